package rbac

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlSource struct {
	r io.Reader
}

// YAMLSource reads catalog data from a YAML document shaped like CatalogData:
//
//	permissions: [pos.access, report.view]
//	roles:
//	  - role: admin
//	    hierarchy: 100
//	  - role: cashier
//	    hierarchy: 40
//	    permissions: [pos.access]
//	templates: []
//	categories: []
//
// The reader is consumed on the first Load.
func YAMLSource(r io.Reader) CatalogSource {
	return &yamlSource{r: r}
}

func (s *yamlSource) Load(_ context.Context) (CatalogData, error) {
	var data CatalogData
	dec := yaml.NewDecoder(s.r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return CatalogData{}, err
	}
	return data, nil
}
