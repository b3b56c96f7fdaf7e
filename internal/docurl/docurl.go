// Package docurl canonicalizes Google Drive document links.
//
// The file host exposes several equivalent URL shapes (direct-serving,
// preview, export, bare-id parameter); only the /view form renders a full
// multi-page document inline in a new tab. Normalization happens at render
// time and is never written back to the stored document.
package docurl

import (
	"regexp"
	"strings"
)

const directHostMarker = "googleusercontent.com/d/"

var (
	idSegmentRe = regexp.MustCompile(`/d/(.*?)(/|$)`)
	idParamRe   = regexp.MustCompile(`[?&]id=([^&]+)`)
)

// Normalize rewrites a Drive file link to the canonical /view form. URLs
// outside the Drive hosts (GitHub, live demos, anything else) pass through
// untouched, as does an empty input.
func Normalize(url string) string {
	if url == "" {
		return ""
	}

	// Direct-serving links are what the upload action hands back; they show
	// only the first page of a document, so rewrite them to the viewer.
	if i := strings.Index(url, directHostMarker); i >= 0 {
		return viewURL(url[i+len(directHostMarker):])
	}

	if !strings.Contains(url, "drive.google.com") {
		return url
	}

	if strings.Contains(url, "/view") {
		return url
	}
	if strings.Contains(url, "/preview") {
		return strings.Replace(url, "/preview", "/view", 1)
	}
	if m := idSegmentRe.FindStringSubmatch(url); m != nil && m[1] != "" {
		return viewURL(m[1])
	}
	if m := idParamRe.FindStringSubmatch(url); m != nil {
		return viewURL(m[1])
	}

	return url
}

func viewURL(id string) string {
	return "https://drive.google.com/file/d/" + id + "/view"
}
