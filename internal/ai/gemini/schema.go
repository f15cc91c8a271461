package gemini

import "github.com/google/generative-ai-go/genai"

// extractionPrompt is the fixed instruction sent alongside the uploaded file.
const extractionPrompt = "Extract the resume information from this document"

// resumeSchema constrains generation to the extraction contract: every field
// is a required string or list.
func resumeSchema() *genai.Schema {
	educationSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"degree":         {Type: genai.TypeString, Description: "The degree of the person"},
			"field_of_study": {Type: genai.TypeString, Description: "The field of study of the person"},
			"start_date":     {Type: genai.TypeString, Description: "The start date of the person"},
			"end_date":       {Type: genai.TypeString, Description: "The end date of the person"},
		},
		Required: []string{"degree", "field_of_study", "start_date", "end_date"},
	}

	workExperienceSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"company":     {Type: genai.TypeString, Description: "The company name"},
			"title":       {Type: genai.TypeString, Description: "The job title"},
			"start_date":  {Type: genai.TypeString, Description: "The start date"},
			"end_date":    {Type: genai.TypeString, Description: "The end date"},
			"description": {Type: genai.TypeString, Description: "The job description"},
		},
		Required: []string{"company", "title", "start_date", "end_date", "description"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":    {Type: genai.TypeString, Description: "The name of the person"},
			"email":   {Type: genai.TypeString, Description: "The email of the person"},
			"phone":   {Type: genai.TypeString, Description: "The phone number of the person"},
			"address": {Type: genai.TypeString, Description: "The address of the person"},
			"skills": {
				Type:        genai.TypeArray,
				Description: "The skills of the person",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"education": {
				Type:        genai.TypeArray,
				Description: "The education of the person",
				Items:       educationSchema,
			},
			"work_experience": {
				Type:        genai.TypeArray,
				Description: "The work experience of the person",
				Items:       workExperienceSchema,
			},
		},
		Required: []string{"name", "email", "phone", "address", "skills", "education", "work_experience"},
	}
}
