package resume

// Data is the fixed target shape for extraction output. Every field is a
// required string or list at the extraction contract level, but stored
// payloads may legitimately deviate (raw_text fallback), so readers decode
// leniently.
type Data struct {
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	Skills         []string         `json:"skills"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"work_experience"`
}

// Education is one education entry.
type Education struct {
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// WorkExperience is one work history entry.
type WorkExperience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// RawTextKey is the field carrying unstructured fallback output when the
// AI response could not be parsed as JSON.
const RawTextKey = "raw_text"
