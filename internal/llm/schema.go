package llm

// CandidateSchema is the JSON Schema for the Candidate record. It is embedded
// in the extraction system prompt so the model knows the exact shape to
// return, and the model's answer is validated against it before
// unmarshalling. Extra properties from the model are tolerated and dropped
// during unmarshalling.
const CandidateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Candidate",
  "type": "object",
  "required": ["name", "Education", "Projects", "Experience", "Achievements", "Skills", "Position_of_Responsibility", "Contact_Info"],
  "properties": {
    "name": {"type": "string"},
    "Education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["Institute_name", "Degree_name", "marks"],
        "properties": {
          "Institute_name": {"type": "string"},
          "Degree_name": {"type": "string"},
          "marks": {"type": "string"}
        }
      }
    },
    "Projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["project_name", "about_project", "skills_used"],
        "properties": {
          "project_name": {"type": "string"},
          "about_project": {"type": "string"},
          "skills_used": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "Experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["Position_name", "Company_name", "skills_used"],
        "properties": {
          "Position_name": {"type": "string"},
          "Company_name": {"type": "string"},
          "skills_used": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "Achievements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["Achievement_name", "institute_name", "about"],
        "properties": {
          "Achievement_name": {"type": "string"},
          "institute_name": {"type": "string"},
          "about": {"type": "string"}
        }
      }
    },
    "Skills": {"type": "array", "items": {"type": "string"}},
    "Position_of_Responsibility": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["Position_name", "Society_name", "Description"],
        "properties": {
          "Position_name": {"type": "string"},
          "Society_name": {"type": "string"},
          "Description": {"type": "string"}
        }
      }
    },
    "Contact_Info": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  }
}`
