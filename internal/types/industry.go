package types

// RoleLevel is a seniority band inferred from document signal words.
type RoleLevel string

const (
	LevelJunior RoleLevel = "junior"
	LevelMid    RoleLevel = "mid"
	LevelSenior RoleLevel = "senior"
	LevelLead   RoleLevel = "lead"
)

// RoleLevelAssessment reports the detected seniority level and how reliable
// that detection is.
type RoleLevelAssessment struct {
	DetectedLevel RoleLevel `json:"detected_level"`
	Confidence    float64   `json:"confidence"`
}

// IndustryAssessment is the classifier's verdict for an evaluation. Exactly
// one industry and one level are reported; confidence is the normalized
// margin between the top lexicon-overlap score and the runner-up.
type IndustryAssessment struct {
	DetectedIndustry string              `json:"detected_industry"`
	Confidence       float64             `json:"confidence"`
	RoleLevel        RoleLevelAssessment `json:"role_level"`
}
