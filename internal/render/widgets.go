package render

import (
	"html/template"
	"strings"

	"yhdfc/internal/site"
)

// NavItem is a header navigation entry. Children render as a dropdown.
type NavItem struct {
	Label    string
	Href     string
	Active   bool
	Children []NavItem
}

// Action is one entry of the floating action button.
type Action struct {
	Label string
	Href  template.URL // tel: links are not in html/template's safe scheme list
	Icon  string
}

// Tracker is the data for the visit-tracking beacon.
type Tracker struct {
	Endpoint string
	Path     string
}

// Chrome is the site navigation wrapped around page content.
type Chrome struct {
	Nav          []NavItem
	ServiceLinks []NavItem
	CompanyLinks []NavItem
	Content      template.HTML
	Email        string
	Phone        string
}

const (
	ContactEmail = "yh@yhforensic.com"
	ContactPhone = "+82-10-8402-2752"
)

var navigation = []NavItem{
	{Label: "Home", Href: "/"},
	{Label: "About", Href: "/about"},
	{Label: "Digital Forensic", Href: "/digital-forensic", Children: serviceLinks},
	{Label: "Press", Href: "/press"},
	{Label: "Training", Href: "/training"},
	{Label: "Contact", Href: "/contact"},
}

// serviceLinks must point at served service slugs.
var serviceLinks = []NavItem{
	{Label: "General Forensics", Href: "/digital-forensic/general-forensics"},
	{Label: "Computer Forensics", Href: "/digital-forensic/computer-forensics"},
	{Label: "Mobile Forensics", Href: "/digital-forensic/mobile-forensics"},
	{Label: "Cloud Forensics", Href: "/digital-forensic/cloud-forensics"},
	{Label: "Data Recovery", Href: "/digital-forensic/data-recovery"},
	{Label: "Expert Witness", Href: "/digital-forensic/expert-witness"},
}

var companyLinks = []NavItem{
	{Label: "Press & Media", Href: "/press"},
	{Label: "Corporate Training", Href: "/training"},
	{Label: "Contact Us", Href: "/contact"},
}

var fabActions = []Action{
	{Label: "Call Us", Href: template.URL("tel:" + ContactPhone), Icon: "phone"},
	{Label: "Email Us", Href: "mailto:" + ContactEmail, Icon: "mail"},
	{Label: "Send Inquiry", Href: "/contact", Icon: "message"},
}

// isAdminPath reports whether path belongs to the admin area, where neither
// the tracker nor the action button appear.
func isAdminPath(path string) bool {
	return strings.HasPrefix(path, "/admin")
}

// isActive reports whether href is the current section. The home link is
// active only on the root path.
func isActive(path, href string) bool {
	if href == "/" {
		return path == "/"
	}
	return strings.HasPrefix(path, href)
}

// VisitTracker returns the beacon for path, or nil when tracking is off for
// it (admin pages, or no API configured). It renders nothing visible.
func VisitTracker(apiURL, path string) *Tracker {
	if apiURL == "" || isAdminPath(path) {
		return nil
	}
	return &Tracker{Endpoint: site.Join(apiURL, "api", "track"), Path: path}
}

// LayoutChrome wraps content in the header, footer and back-to-top chrome,
// marking the navigation entries active for path.
func LayoutChrome(path string, content template.HTML) Chrome {
	nav := make([]NavItem, len(navigation))
	for i, item := range navigation {
		item.Active = isActive(path, item.Href)
		nav[i] = item
	}
	return Chrome{
		Nav:          nav,
		ServiceLinks: serviceLinks,
		CompanyLinks: companyLinks,
		Content:      content,
		Email:        ContactEmail,
		Phone:        ContactPhone,
	}
}

// ConditionalActionButton returns the floating actions for path, or nil on
// admin pages.
func ConditionalActionButton(path string) []Action {
	if isAdminPath(path) {
		return nil
	}
	return fabActions
}
