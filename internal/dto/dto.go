// Package dto holds the request and response shapes of the HTTP API.
//
// Requests carry binding tags (`query`, `param`, `form`) and validator
// rules, and implement validation.Validatable. Responses are built from
// model values and add derived fields such as image_url.
package dto

import "strings"

// ImageURL builds the public address of an uploaded image:
//
//	ImageURL("http://192.168.0.19:3333/", "abc.jpg") == "http://192.168.0.19:3333/uploads/abc.jpg"
func ImageURL(publicURL, image string) string {
	return strings.TrimRight(publicURL, "/") + "/uploads/" + image
}
