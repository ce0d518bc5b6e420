package email

// Template names an embedded HTML template under templates/.
type Template string

const (
	// TemplatePointRegistered corresponds to templates/point_registered.html
	TemplatePointRegistered Template = "point_registered"
)
