package readmodel

type SpecialtyRM struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProviderRM struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	ImageURL              string        `json:"image_url,omitempty"`
	ProfessionalProfileID string        `json:"professional_profile_id,omitempty"`
	Specialties           []SpecialtyRM `json:"specialties,omitempty"`
}

func (p *ProviderRM) HasProfessionalProfile() bool {
	return p != nil && p.ProfessionalProfileID != ""
}
