package export

import (
	"fmt"
	"net/url"
	"strings"

	"resumeai/internal/resume"
)

// EmailDraft is a prefilled mailto link plus its decoded parts, so callers
// can show the body without re-parsing the URL.
type EmailDraft struct {
	MailtoURL string `json:"mailtoUrl"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// ComposeEmail builds a share draft for the document. The draft carries the
// summary and links only; the formatted file has to be attached by hand.
func ComposeEmail(doc *resume.Document, to string) *EmailDraft {
	name := doc.PersonalInfo.FullName
	subject := "Resume Draft: " + name

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	b.WriteString("Here is the content of your generated resume:\n\n")
	b.WriteString("SUMMARY\n")
	b.WriteString(doc.Summary)
	b.WriteString("\n\nLINKS\n")
	b.WriteString(doc.PersonalInfo.LinkedIn)
	b.WriteString("\n")
	b.WriteString(doc.PersonalInfo.Website)
	b.WriteString("\n\n(Note: To attach the formatted PDF, please download it and attach it to this email manually.)\n\n")
	b.WriteString("Generated by ResumeAI")

	body := b.String()
	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		to, url.QueryEscape(subject), url.QueryEscape(body))

	return &EmailDraft{
		MailtoURL: mailto,
		To:        to,
		Subject:   subject,
		Body:      body,
	}
}
