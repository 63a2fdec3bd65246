package section

import (
	"strings"
	"time"
)

// Status tag values for the shared projects table. A row is tagged exactly
// one of the two; the projects and portfolio resources never see each
// other's rows.
const (
	TagProject   = "project"
	TagPortfolio = "portfolio"
)

func deriveCurrentJob(item *Item, payload map[string]any, created bool) {
	for _, key := range []string{"end_date", "endDate"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		str, _ := raw.(string)
		str = strings.TrimSpace(str)
		item.Values["current_job"] = str == "" || strings.EqualFold(str, "present")
		return
	}
	if created {
		// No end date on a fresh record means the position is ongoing,
		// unless the client said otherwise explicitly.
		if _, ok := payload["current"]; !ok {
			endDate, _ := item.Values["end_date"].(*time.Time)
			item.Values["current_job"] = endDate == nil
		}
	}
}

var Experience = &Schema{
	Resource:  "experience",
	Aliases:   []string{"experiences"},
	Table:     "experiences",
	IDKey:     "experience_id",
	ListKey:   "experience",
	SingleKey: "experience",
	Label:     "Experience",
	Fields: []Field{
		{Column: "title", Wire: "job_title", Aliases: []string{"jobTitle"}},
		{Column: "company"},
		{Column: "location"},
		{Column: "description"},
		{Column: "start_date", Aliases: []string{"startDate"}, Type: Date},
		{Column: "end_date", Aliases: []string{"endDate"}, Type: Date},
		{Column: "employment_type", Aliases: []string{"employmentType"}},
		{Column: "current_job", Wire: "current", Type: Bool},
	},
	OrderBy: "start_date DESC NULLS LAST",
	Derive:  deriveCurrentJob,
}

var Education = &Schema{
	Resource:  "education",
	Aliases:   []string{"educations"},
	Table:     "educations",
	IDKey:     "education_id",
	ListKey:   "education",
	SingleKey: "education",
	Label:     "Education",
	Fields: []Field{
		{Column: "institution"},
		{Column: "degree"},
		{Column: "field"},
		{Column: "location"},
		{Column: "description"},
		{Column: "gpa"},
		{Column: "start_date", Aliases: []string{"startDate"}, Type: Date},
		{Column: "end_date", Aliases: []string{"endDate"}, Type: Date},
	},
	OrderBy: "start_date DESC NULLS LAST",
}

var Projects = &Schema{
	Resource:  "projects",
	IDKey:     "project_id",
	Table:     "projects",
	ListKey:   "projects",
	SingleKey: "project",
	Label:     "Project",
	Fields: []Field{
		{Column: "name", Wire: "title", Aliases: []string{"name"}},
		{Column: "description"},
		{Column: "demo_url", Wire: "project_url", Aliases: []string{"link", "projectUrl"}},
		{Column: "github_url", Aliases: []string{"githubUrl"}},
		{Column: "technologies", Type: JSONList},
	},
	OrderBy: "created_at DESC",
	Tag:     &Tag{Column: "status", Value: TagProject},
}

var Portfolio = &Schema{
	Resource:  "portfolio",
	Aliases:   []string{"portfolio-items", "portfolioItems"},
	Table:     "projects",
	IDKey:     "portfolio_item_id",
	ListKey:   "portfolio_items",
	SingleKey: "portfolio_item",
	Label:     "Portfolio item",
	Fields: []Field{
		{Column: "name", Wire: "title", Aliases: []string{"name"}},
		{Column: "description"},
		{Column: "demo_url", Wire: "url", Aliases: []string{"link"}},
	},
	OrderBy: "created_at DESC",
	Tag:     &Tag{Column: "status", Value: TagPortfolio},
}

var Skills = &Schema{
	Resource:  "skills",
	Table:     "skills",
	IDKey:     "skill_id",
	ListKey:   "skills",
	SingleKey: "skill",
	Label:     "Skill",
	Fields: []Field{
		{Column: "name", Wire: "skill_name", Aliases: []string{"name", "skill"}},
	},
	// Insertion order is the only ordering skills promise.
	OrderBy: "id ASC",
}

var Awards = &Schema{
	Resource:  "awards",
	Table:     "awards",
	IDKey:     "award_id",
	ListKey:   "awards",
	SingleKey: "award",
	Label:     "Award",
	Fields: []Field{
		{Column: "title"},
		{Column: "issuer", Aliases: []string{"organization"}},
		{Column: "description"},
		{Column: "date", Type: Date},
	},
	OrderBy: "date DESC NULLS LAST",
}

var Certifications = &Schema{
	Resource:  "certifications",
	Table:     "certifications",
	IDKey:     "certification_id",
	ListKey:   "certifications",
	SingleKey: "certification",
	Label:     "Certification",
	Fields: []Field{
		{Column: "name", Aliases: []string{"title"}},
		{Column: "issuer"},
		{Column: "date_obtained", Wire: "date", Aliases: []string{"dateObtained"}, Type: Date},
		{Column: "expiry_date", Aliases: []string{"expiryDate"}, Type: Date},
		{Column: "credential_id", Aliases: []string{"credential_url", "credentialId"}},
	},
	OrderBy: "date_obtained DESC NULLS LAST",
}

var Publications = &Schema{
	Resource:  "publications",
	Table:     "publications",
	IDKey:     "publication_id",
	ListKey:   "publications",
	SingleKey: "publication",
	Label:     "Publication",
	Fields: []Field{
		{Column: "title"},
		{Column: "abstract", Wire: "description"},
		{Column: "journal", Wire: "publisher"},
		{Column: "publication_url", Wire: "url", Aliases: []string{"publicationUrl"}},
		{Column: "year", Aliases: []string{"date"}, Type: Int},
		{Column: "authors", Type: JSONList},
	},
	OrderBy: "year DESC NULLS LAST",
}

var Patents = &Schema{
	Resource:  "patents",
	Table:     "patents",
	IDKey:     "patent_id",
	ListKey:   "patents",
	SingleKey: "patent",
	Label:     "Patent",
	Fields: []Field{
		{Column: "title"},
		{Column: "description"},
		{Column: "patent_number", Aliases: []string{"patentNumber"}},
		{Column: "filing_date", Aliases: []string{"filingDate", "date"}, Type: Date},
		{Column: "grant_date", Aliases: []string{"grantDate"}, Type: Date},
		{Column: "inventors", Type: JSONList},
	},
	OrderBy: "filing_date DESC NULLS LAST",
}

var Languages = &Schema{
	Resource:  "languages",
	Table:     "languages",
	IDKey:     "language_id",
	ListKey:   "languages",
	SingleKey: "language",
	Label:     "Language",
	Fields: []Field{
		{Column: "name"},
		{Column: "proficiency_level", Wire: "proficiency", Aliases: []string{"proficiencyLevel"}},
	},
	OrderBy: "created_at DESC",
}

var Volunteering = &Schema{
	Resource:  "volunteer-experiences",
	Aliases:   []string{"volunteerExperiences", "volunteering"},
	Table:     "volunteer_experiences",
	IDKey:     "volunteering_id",
	ListKey:   "volunteer_experiences",
	SingleKey: "volunteer_experience",
	Label:     "Volunteer experience",
	Fields: []Field{
		{Column: "organization"},
		{Column: "title", Wire: "role"},
		{Column: "description"},
		{Column: "start_date", Aliases: []string{"startDate"}, Type: Date},
		{Column: "end_date", Aliases: []string{"endDate"}, Type: Date},
	},
	OrderBy: "start_date DESC NULLS LAST",
}

var Interests = &Schema{
	Resource:  "hobby-interests",
	Aliases:   []string{"hobbyInterests", "interests"},
	Table:     "hobby_interests",
	IDKey:     "interest_id",
	ListKey:   "hobby_interests",
	SingleKey: "hobby_interest",
	Label:     "Interest",
	Fields: []Field{
		{Column: "name"},
		{Column: "description"},
	},
	OrderBy: "created_at DESC",
}

var SocialLinks = &Schema{
	Resource:  "social-media-links",
	Aliases:   []string{"socialMediaLinks", "social-profiles"},
	Table:     "social_media_links",
	IDKey:     "social_profile_id",
	ListKey:   "social_media_links",
	SingleKey: "social_media_link",
	Label:     "Social media link",
	Fields: []Field{
		{Column: "platform"},
		{Column: "url"},
	},
	OrderBy: "created_at DESC",
}

var Courses = &Schema{
	Resource:  "course-trainings",
	Aliases:   []string{"courseTrainings", "courses"},
	Table:     "course_trainings",
	IDKey:     "course_id",
	ListKey:   "course_trainings",
	SingleKey: "course_training",
	Label:     "Course",
	Fields: []Field{
		{Column: "name", Wire: "title"},
		{Column: "provider", Wire: "institution"},
		{Column: "completion_date", Aliases: []string{"completionDate"}, Type: Date},
		{Column: "credential_id", Wire: "url"},
		{Column: "description"},
	},
	OrderBy: "completion_date DESC NULLS LAST",
}

var References = &Schema{
	Resource:  "references",
	Table:     "reference_contacts",
	IDKey:     "reference_id",
	ListKey:   "references",
	SingleKey: "reference",
	Label:     "Reference",
	Fields: []Field{
		{Column: "name"},
		{Column: "relationship"},
		{Column: "company", Wire: "contact"},
		{Column: "email"},
		{Column: "phone"},
		{Column: "title", Wire: "notes"},
	},
	OrderBy: "created_at DESC",
}

var Memberships = &Schema{
	Resource:  "professional-memberships",
	Aliases:   []string{"professionalMemberships", "memberships"},
	Table:     "professional_memberships",
	IDKey:     "membership_id",
	ListKey:   "professional_memberships",
	SingleKey: "professional_membership",
	Label:     "Professional membership",
	Fields: []Field{
		{Column: "organization"},
		{Column: "role"},
		{Column: "start_date", Aliases: []string{"startDate"}, Type: Date},
		{Column: "end_date", Aliases: []string{"endDate"}, Type: Date},
		{Column: "description"},
	},
	OrderBy: "start_date DESC NULLS LAST",
}

var Achievements = &Schema{
	Resource:  "key-achievements",
	Aliases:   []string{"keyAchievements", "achievements"},
	Table:     "key_achievements",
	IDKey:     "achievement_id",
	ListKey:   "key_achievements",
	SingleKey: "key_achievement",
	Label:     "Key achievement",
	Fields: []Field{
		{Column: "title"},
		{Column: "description"},
		{Column: "date", Type: Date},
	},
	OrderBy: "date DESC NULLS LAST",
}

var Conferences = &Schema{
	Resource:  "conferences",
	Table:     "conferences",
	IDKey:     "conference_id",
	ListKey:   "conferences",
	SingleKey: "conference",
	Label:     "Conference",
	Fields: []Field{
		{Column: "name", Aliases: []string{"title"}},
		{Column: "location"},
		{Column: "date", Type: Date},
		{Column: "description"},
	},
	OrderBy: "date DESC NULLS LAST",
}

var SpeakingEngagements = &Schema{
	Resource:  "speaking-engagements",
	Aliases:   []string{"speakingEngagements"},
	Table:     "speaking_engagements",
	IDKey:     "speaking_engagement_id",
	ListKey:   "speaking_engagements",
	SingleKey: "speaking_engagement",
	Label:     "Speaking engagement",
	Fields: []Field{
		{Column: "title"},
		{Column: "event", Aliases: []string{"event_name", "eventName"}},
		{Column: "date", Type: Date},
		{Column: "url"},
		{Column: "description"},
	},
	OrderBy: "date DESC NULLS LAST",
}

var Licenses = &Schema{
	Resource:  "licenses",
	Table:     "licenses",
	IDKey:     "license_id",
	ListKey:   "licenses",
	SingleKey: "license",
	Label:     "License",
	Fields: []Field{
		{Column: "name", Aliases: []string{"title"}},
		{Column: "issuer"},
		{Column: "license_number", Aliases: []string{"licenseNumber"}},
		{Column: "issue_date", Aliases: []string{"issueDate"}, Type: Date},
		{Column: "expiry_date", Aliases: []string{"expiryDate"}, Type: Date},
	},
	OrderBy: "issue_date DESC NULLS LAST",
}

// All returns every registered section schema in aggregation order.
func All() []*Schema {
	return []*Schema{
		Experience,
		Education,
		Projects,
		Portfolio,
		Skills,
		Awards,
		Certifications,
		Publications,
		Patents,
		Languages,
		Volunteering,
		Interests,
		SocialLinks,
		Courses,
		References,
		Memberships,
		Achievements,
		Conferences,
		SpeakingEngagements,
		Licenses,
	}
}

// ByResource resolves a schema by its primary resource name.
func ByResource(name string) *Schema {
	for _, s := range All() {
		if s.Resource == name {
			return s
		}
	}
	return nil
}
