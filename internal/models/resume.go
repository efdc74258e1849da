package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Resume struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	UserID        string `bson:"user_id" json:"userId"`
	Title         string `bson:"title" json:"title"`
	ThumbnailLink string `bson:"thumbnail_link,omitempty" json:"thumbnailLink,omitempty"`

	Template    Template    `bson:"template" json:"template"`
	ProfileInfo ProfileInfo `bson:"profile_info" json:"profileInfo"`
	ContactInfo ContactInfo `bson:"contact_info" json:"contactInfo"`

	WorkExperiences []WorkExperience `bson:"work_experiences" json:"workExperiences"`
	Educations      []Education      `bson:"educations" json:"educations"`
	Skills          []Skill          `bson:"skills" json:"skills"`
	Projects        []Project        `bson:"projects" json:"projects"`
	Certifications  []Certification  `bson:"certifications" json:"certifications"`
	Languages       []Language       `bson:"languages" json:"languages"`
	Interests       []string         `bson:"interests" json:"interests"`
}

type Template struct {
	Theme        string   `bson:"theme" json:"theme"`
	ColorPalette []string `bson:"color_palette" json:"colorPalette"`
}

type ProfileInfo struct {
	FullName          string `bson:"full_name" json:"fullName"`
	Designation       string `bson:"designation" json:"designation"`
	Summary           string `bson:"summary" json:"summary"`
	ProfilePreviewURL string `bson:"profile_preview_url,omitempty" json:"profilePreviewUrl,omitempty"`
}

type ContactInfo struct {
	Email       string `bson:"email" json:"email"`
	PhoneNumber string `bson:"phone_number" json:"phoneNumber"`
	Location    string `bson:"location" json:"location"`
	LinkedIn    string `bson:"linkedin" json:"linkedIn"`
	Github      string `bson:"github" json:"github"`
	Website     string `bson:"website" json:"website"`
}

type WorkExperience struct {
	Company     string `bson:"company" json:"name"`
	Role        string `bson:"role" json:"role"`
	StartDate   string `bson:"start_date" json:"startDate"`
	EndDate     string `bson:"end_date" json:"endDate"`
	Description string `bson:"description" json:"description"`
}

type Education struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"`
	StartDate   string `bson:"start_date" json:"startDate"`
	EndDate     string `bson:"end_date" json:"endDate"`
}

type Skill struct {
	Name     string `bson:"name" json:"name"`
	Progress int    `bson:"progress" json:"progress"`
}

type Project struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Github      string `bson:"github" json:"github"`
	LiveDemo    string `bson:"live_demo" json:"liveDemo"`
}

type Certification struct {
	Title  string `bson:"title" json:"title"`
	Issuer string `bson:"issuer" json:"issuer"`
	Year   string `bson:"year" json:"year"`
}

type Language struct {
	Name     string `bson:"name" json:"name"`
	Progress int    `bson:"progress" json:"progress"`
}

// NewDefaultResume returns a resume owned by userID with every section
// initialized so the editor never sees null collections.
func NewDefaultResume(userID, title string) *Resume {
	return &Resume{
		UserID:          userID,
		Title:           title,
		WorkExperiences: []WorkExperience{},
		Educations:      []Education{},
		Skills:          []Skill{},
		Projects:        []Project{},
		Certifications:  []Certification{},
		Languages:       []Language{},
		Interests:       []string{},
	}
}
