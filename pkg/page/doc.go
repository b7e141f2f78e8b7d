// Package page composes a [profile.Profile] into the document tree of a
// single portfolio page.
//
// # Overview
//
// [Compose] maps each record collection of a profile to one repeated visual
// unit inside a fixed page template:
//
//	Header   nav + hero            (anchor "top")
//	Sections Highlights            (anchor "work")
//	         Timeline + passions   (anchor "community")
//	         Tech stack            (anchor "tech")
//	         Connect               (anchor "connect")
//	Footer   copyright year + back-to-top link
//
// Composition is pure: the same profile and the same date always yield a
// structurally identical [Document]. The date is only used for the footer
// year. Units keep the order of their source records; a tech category
// becomes one card whose tools are joined with [Delimiter].
//
// A Document carries no markup. Serializing it is the job of the sinks in
// [github.com/induwarauthsara/folio/pkg/page/sink].
package page
