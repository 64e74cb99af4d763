package response

type SpecialtyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProfessionalProfileResponse struct {
	ID        string              `json:"id"`
	Specialty []SpecialtyResponse `json:"specialty,omitempty"`
}

type FileResponse struct {
	ImgURL string `json:"imgUrl"`
}

type ProviderResponse struct {
	ID                  string                       `json:"id"`
	Name                string                       `json:"name"`
	ProfessionalProfile *ProfessionalProfileResponse `json:"professionalProfile,omitempty"`
	File                *FileResponse                `json:"file,omitempty"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
