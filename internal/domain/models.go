package domain

import "strings"

// ScrapedFragment is the unnormalized page evidence handed from the fetcher to the normalizer.
type ScrapedFragment struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
}

// Usable reports whether the fragment carries a title or a snippet.
func (f ScrapedFragment) Usable() bool {
	return strings.TrimSpace(f.Title) != "" || strings.TrimSpace(f.Snippet) != ""
}

// ToolRecord is the normalized directory entry for a single AI tool.
type ToolRecord struct {
	Name             string   `json:"name"`
	Tagline          string   `json:"tagline"`
	Description      string   `json:"description"`
	WebsiteURL       string   `json:"website_url"`
	LogoURL          string   `json:"logo_url"`
	ToolThumbnailURL string   `json:"tool_thumbnail_url"`
	TwitterURL       string   `json:"twitter_url"`
	LinkedinURL      string   `json:"linkedin_url"`
	TeamMembers      []string `json:"team_members"`
	IsVerified       bool     `json:"is_verified"`

	CompanyName          string `json:"company_name"`
	CompanyWebsite       string `json:"company_website"`
	CompanyLogo          string `json:"company_logo"`
	CompanyVerified      bool   `json:"company_verified"`
	CompanyTeamSize      string `json:"company_team_size"`
	CompanyFundingRound  string `json:"company_funding_round"`
	CompanyFundingAmount string `json:"company_funding_amount"`
	CompanyFundingInfo   string `json:"company_funding_info"`

	Categories    []int `json:"categories"`
	Subcategories []int `json:"subcategories"`
	Tags          []int `json:"tags"`
}

// ToolRecordKeys is the exact key set of a serialized ToolRecord, in declaration order.
var ToolRecordKeys = []string{
	"name",
	"tagline",
	"description",
	"website_url",
	"logo_url",
	"tool_thumbnail_url",
	"twitter_url",
	"linkedin_url",
	"team_members",
	"is_verified",
	"company_name",
	"company_website",
	"company_logo",
	"company_verified",
	"company_team_size",
	"company_funding_round",
	"company_funding_amount",
	"company_funding_info",
	"categories",
	"subcategories",
	"tags",
}

// WithDefaults replaces nil slices with empty ones so the record never serializes a null.
func (r ToolRecord) WithDefaults() ToolRecord {
	if r.TeamMembers == nil {
		r.TeamMembers = []string{}
	}
	if r.Categories == nil {
		r.Categories = []int{}
	}
	if r.Subcategories == nil {
		r.Subcategories = []int{}
	}
	if r.Tags == nil {
		r.Tags = []int{}
	}
	return r
}
