//go:build unit

package builder

import (
	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/usecase/readmodel"
)

type ProviderBuilder struct {
	ID                    string
	Name                  string
	ImageURL              string
	ProfessionalProfileID string
	Specialties           []string
}

func NewProviderBuilder() *ProviderBuilder {
	return &ProviderBuilder{
		ID:                    "provider-1",
		Name:                  "Dr. Lima",
		ImageURL:              "https://cdn.example.com/lima.png",
		ProfessionalProfileID: "profile-1",
		Specialties:           []string{"Physiotherapy"},
	}
}

func (b *ProviderBuilder) With(mutate func(*ProviderBuilder)) *ProviderBuilder {
	mutate(b)
	return b
}

func (b *ProviderBuilder) BuildReadModel() *readmodel.ProviderRM {
	rm := &readmodel.ProviderRM{
		ID:                    b.ID,
		Name:                  b.Name,
		ImageURL:              b.ImageURL,
		ProfessionalProfileID: b.ProfessionalProfileID,
	}
	for i, name := range b.Specialties {
		rm.Specialties = append(rm.Specialties, readmodel.SpecialtyRM{ID: specialtyID(i), Name: name})
	}
	return rm
}

func (b *ProviderBuilder) BuildResponse() resdto.ProviderResponse {
	res := resdto.ProviderResponse{
		ID:   b.ID,
		Name: b.Name,
	}
	if b.ImageURL != "" {
		res.File = &resdto.FileResponse{ImgURL: b.ImageURL}
	}
	if b.ProfessionalProfileID != "" {
		profile := &resdto.ProfessionalProfileResponse{ID: b.ProfessionalProfileID}
		for i, name := range b.Specialties {
			profile.Specialty = append(profile.Specialty, resdto.SpecialtyResponse{ID: specialtyID(i), Name: name})
		}
		res.ProfessionalProfile = profile
	}
	return res
}

func (b *ProviderBuilder) WithoutProfile() *ProviderBuilder {
	b.ProfessionalProfileID = ""
	b.Specialties = nil
	return b
}

func specialtyID(i int) string {
	return "specialty-" + string(rune('a'+i))
}
