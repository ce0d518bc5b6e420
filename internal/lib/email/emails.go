package email

import "strconv"

// SendPointRegisteredEmail confirms to a point's contact address that the
// point is now listed.
func (c *Client) SendPointRegisteredEmail(to string, pointID int64, pointName, city, uf string) error {
	data := map[string]string{
		"PointID":   strconv.FormatInt(pointID, 10),
		"PointName": pointName,
		"City":      city,
		"UF":        uf,
	}

	return c.SendEmail(
		to,
		"Seu ponto de coleta está no Ecoleta!",
		TemplatePointRegistered,
		data,
	)
}
