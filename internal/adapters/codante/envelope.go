package codante

import (
	"net/url"
	"strconv"

	"github.com/okian/olympia/internal/domain/model"
)

type disciplinesEnvelope struct {
	Data []model.Discipline `json:"data"`
}

type countriesEnvelope struct {
	Data  []model.Country `json:"data"`
	Links model.Links     `json:"links"`
	Meta  model.Meta      `json:"meta"`
}

type eventsEnvelope struct {
	Data  []model.Event `json:"data"`
	Links model.Links   `json:"links"`
	Meta  model.Meta    `json:"meta"`
}

// lastPage reads the page query parameter of the envelope's last link,
// falling back to meta.last_page and then to 1.
func lastPage(links model.Links, meta model.Meta) int {
	if u, err := url.Parse(links.Last); err == nil && links.Last != "" {
		if n, err := strconv.Atoi(u.Query().Get("page")); err == nil && n > 0 {
			return n
		}
	}
	if meta.LastPage > 0 {
		return meta.LastPage
	}
	return 1
}
