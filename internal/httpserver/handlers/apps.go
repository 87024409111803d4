package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
	"github.com/MrSnakeDoc/soccerfront/internal/relay"
)

type appInstance struct {
	InstanceID string `json:"instanceId"`
	Status     string `json:"status"`
	URL        string `json:"url"`
}

type appSummary struct {
	Name      string        `json:"name"`
	Instances []appInstance `json:"instances"`
}

// RegistryApps lists what is currently registered in Eureka.
func RegistryApps(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apps := d.Registry.Applications(r.Context())

		out := make([]appSummary, 0, len(apps))
		for _, app := range apps {
			s := appSummary{Name: app.Name, Instances: make([]appInstance, 0, len(app.Instances))}
			for _, inst := range app.Instances {
				s.Instances = append(s.Instances, appInstance{
					InstanceID: inst.InstanceID,
					Status:     string(inst.Status),
					URL:        inst.BaseURL(),
				})
			}
			out = append(out, s)
		}

		env, err := okEnvelope(out)
		if err != nil {
			writeEnvelope(w, relay.EnvelopeOf(err))
			return
		}
		writeEnvelope(w, env)
	}
}
