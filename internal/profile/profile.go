// Package profile holds the portfolio content served by the site and
// injected into chat prompts. The content ships as an embedded default
// and can be overridden with a YAML file.
package profile

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Project is a single portfolio project entry.
type Project struct {
	Name        string   `yaml:"name" koanf:"name" json:"name"`
	Description string   `yaml:"description" koanf:"description" json:"description"`
	Stack       []string `yaml:"stack" koanf:"stack" json:"stack"`
}

// Publication is a research publication entry.
type Publication struct {
	Title    string   `yaml:"title" koanf:"title" json:"title"`
	Journals []string `yaml:"journals" koanf:"journals" json:"journals"`
}

// Education is a degree or training entry.
type Education struct {
	Qualification string `yaml:"qualification" koanf:"qualification" json:"qualification"`
	Institution   string `yaml:"institution" koanf:"institution" json:"institution"`
	Years         string `yaml:"years" koanf:"years" json:"years"`
}

// Contact holds the public contact channels.
type Contact struct {
	Email    string `yaml:"email" koanf:"email" json:"email"`
	Phone    string `yaml:"phone" koanf:"phone" json:"phone"`
	LinkedIn string `yaml:"linkedin" koanf:"linkedin" json:"linkedin"`
	Location string `yaml:"location" koanf:"location" json:"location"`
}

// Profile is the full portfolio content record.
type Profile struct {
	Name         string        `yaml:"name" koanf:"name" json:"name"`
	Title        string        `yaml:"title" koanf:"title" json:"title"`
	Summary      []string      `yaml:"summary" koanf:"summary" json:"summary"`
	CurrentRole  []string      `yaml:"current_role" koanf:"current_role" json:"currentRole"`
	Skills       []string      `yaml:"skills" koanf:"skills" json:"skills"`
	Projects     []Project     `yaml:"projects" koanf:"projects" json:"projects"`
	Research     []Publication `yaml:"research" koanf:"research" json:"research"`
	Education    []Education   `yaml:"education" koanf:"education" json:"education"`
	Contact      Contact       `yaml:"contact" koanf:"contact" json:"contact"`
	Instructions []string      `yaml:"instructions" koanf:"instructions" json:"-"`
}

// Default returns the built-in portfolio content.
func Default() *Profile {
	return &Profile{
		Name:  "Aravind V H",
		Title: "Full Stack Developer & Software Engineer",
		Summary: []string{
			"Full Stack Developer specializing in MERN Stack (MongoDB, Express.js, React, Node.js)",
			"Currently working at Expertzlab Technologies Pvt Ltd (August 2024 - Present)",
			"2+ years of experience in web development",
			"Based in Ernakulam, Kerala, India",
		},
		CurrentRole: []string{
			"Developing Eduvocate, a scalable e-learning platform using React, Node.js, MongoDB, and FastAPI",
			"Implementing microservices architecture with Nameko",
			"Built Expertzlab.com using Next.js, Sanity CMS, Firebase, and Nodemailer",
		},
		Skills: []string{
			"Languages: JavaScript, TypeScript",
			"Frontend: React, Next.js, Angular",
			"Backend: Node.js, Express.js",
			"Databases: MongoDB, SQL, Firebase",
			"Cloud: AWS, GCP",
			"Web: Bootstrap, Tailwind CSS, HTML5, CSS3",
		},
		Projects: []Project{
			{Name: "Eduvocate", Description: "E-learning platform", Stack: []string{"React", "Node.js", "MongoDB", "FastAPI"}},
			{Name: "Expertzlab.com", Description: "Training website", Stack: []string{"Next.js", "Sanity CMS", "Firebase"}},
			{Name: "AI Chatbot Nova", Description: "Hybrid AI chatbot", Stack: []string{"Next.js", "Gemini"}},
			{Name: "EcoShopper", Description: "E-commerce platform", Stack: []string{"MERN"}},
			{Name: "IoT Research", Description: "Published in IJIRT, IJRSET, IJCRT", Stack: []string{"IoT", "Microservices"}},
		},
		Research: []Publication{
			{Title: "Scalable IoT Architectures Using Microservices", Journals: []string{"IJIRT", "IJRSET", "IJCRT"}},
		},
		Education: []Education{
			{Qualification: "MCom", Institution: "Mahatma Gandhi University", Years: "2024-2026"},
			{Qualification: "Bachelor of Commerce", Institution: "Rajagiri College", Years: "2021-2024"},
			{Qualification: "MERN Stack Training", Institution: "GoFreeLab Technologies", Years: ""},
		},
		Contact: Contact{
			Email:    "aravindhari1718@gmail.com",
			Phone:    "+91 9995475379",
			LinkedIn: "linkedin.com/in/aravind-v-h-4862b5287",
			Location: "Ernakulam, Kerala, India",
		},
		Instructions: []string{
			"Be friendly and professional",
			"Keep responses SHORT (2-3 sentences max)",
			"Provide accurate information only",
			"Suggest reaching out to Aravind for detailed discussions",
		},
	}
}

// Load returns the default profile overlaid with the YAML file at path,
// if the file exists. A missing file is not an error.
func Load(path string) (*Profile, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("accessing profile %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	if err := k.Unmarshal("", p); err != nil {
		return nil, fmt.Errorf("unmarshalling profile %s: %w", path, err)
	}
	return p, nil
}
