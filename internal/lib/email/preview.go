package email

// PreviewData contains sample template data for local preview and tests.
//
//	PreviewData[TemplatePointRegistered]["PointName"] == "Mercado do Zé"
var PreviewData = map[Template]map[string]string{
	TemplatePointRegistered: {
		"PointID":   "42",
		"PointName": "Mercado do Zé",
		"City":      "Rio do Sul",
		"UF":        "SC",
	},
}
