package handlers

import (
	"yhdfc/internal/render"
	"yhdfc/internal/slug"
)

// Service is one digital forensic service offering. Slug is derived from
// Title.
type Service struct {
	Slug       string
	Title      string
	Summary    string
	Highlights []string
}

var services = []Service{
	{
		Title:   "Computer Forensics",
		Summary: "Forensic imaging and analysis of desktops, laptops and servers to recover deleted files, user activity and system artefacts.",
		Highlights: []string{
			"Write-blocked disk imaging with hash verification",
			"Timeline reconstruction from file system and registry artefacts",
			"Email, browser and document history analysis",
		},
	},
	{
		Title:   "Mobile Forensics",
		Summary: "Extraction and analysis of iOS and Android devices, including messaging apps, location history and deleted data.",
		Highlights: []string{
			"Logical, file system and physical extractions",
			"KakaoTalk, WhatsApp and Telegram message recovery",
			"Location and call history reconstruction",
		},
	},
	{
		Title:   "Cloud Forensics",
		Summary: "Collection of evidence from cloud accounts and SaaS platforms with documented, defensible procedures.",
		Highlights: []string{
			"Google Workspace and Microsoft 365 collections",
			"Cloud storage and backup acquisition",
		},
	},
	{
		Title:   "Data Recovery",
		Summary: "Recovery of data from damaged, formatted or encrypted storage media.",
		Highlights: []string{
			"Failed hard drives and SSDs",
			"Formatted and partially overwritten media",
		},
	},
	{
		Title:   "Expert Witness",
		Summary: "Court-ready forensic reports and expert testimony for civil and criminal proceedings.",
		Highlights: []string{
			"Independent review of opposing expert reports",
			"Testimony in Korean and English",
		},
	},
	{
		Title:   "General Forensics",
		Summary: "Investigations that span several device types, from incident response to internal corporate inquiries.",
	},
}

func init() {
	for i := range services {
		services[i].Slug = slug.Generate(services[i].Title)
	}
}

// findService looks up a service by slug.
func findService(name string) (Service, bool) {
	for _, s := range services {
		if s.Slug == name {
			return s, true
		}
	}
	return Service{}, false
}

// contactDetails feeds the contact page fragment.
var contactDetails = struct {
	Email string
	Phone string
}{
	Email: render.ContactEmail,
	Phone: render.ContactPhone,
}

// StaticPage maps a fixed route to its title and content fragment.
type StaticPage struct {
	Path     string
	Title    string
	Fragment string
	Data     any
	Markdown string // source under web/content/, rendered into the legal fragment
}

// StaticPages are the fixed content routes other than the homepage and the
// service pages.
var StaticPages = []StaticPage{
	{Path: "/about", Title: "About", Fragment: "about"},
	{Path: "/press", Title: "Press & Media", Fragment: "press"},
	{Path: "/training", Title: "Corporate Training", Fragment: "training"},
	{Path: "/blog", Title: "Blog", Fragment: "blog"},
	{Path: "/contact", Title: "Contact", Fragment: "contact", Data: contactDetails},
	{Path: "/privacy-policy", Title: "Privacy Policy", Fragment: "legal", Markdown: "privacy-policy.md"},
	{Path: "/terms-of-service", Title: "Terms of Service", Fragment: "legal", Markdown: "terms-of-service.md"},
}
