package http

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	stateSet     = "set"
	stateMissing = "MISSING"
)

type tierReport struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

type debugReport struct {
	Contentful map[string]string `json:"contentful"`
	PostgREST  map[string]string `json:"postgrest"`
	Database   map[string]string `json:"database"`
	Mock       map[string]string `json:"mock"`
	Tiers      []tierReport      `json:"tiers"`
}

func presence(value string) string {
	if strings.TrimSpace(value) == "" {
		return stateMissing
	}
	return stateSet
}

func (api *PublicAPI) handleDebugSources(w http.ResponseWriter, r *http.Request) {
	cfg := api.sources
	report := debugReport{
		Contentful: map[string]string{
			"space_id":         presence(cfg.Contentful.SpaceID),
			"access_token":     presence(cfg.Contentful.AccessToken),
			"management_token": presence(cfg.Contentful.ManagementToken),
			"environment":      cfg.Contentful.Environment,
		},
		PostgREST: map[string]string{
			"url":      presence(cfg.PostgREST.URL),
			"anon_key": presence(cfg.PostgREST.AnonKey),
		},
		Database: map[string]string{
			"driver": cfg.Database.Driver,
			"dsn":    presence(cfg.Database.DSN),
		},
		Mock: map[string]string{
			"enabled": strconv.FormatBool(cfg.Mock.Enabled),
		},
	}
	for _, status := range api.reader.Tiers() {
		report.Tiers = append(report.Tiers, tierReport{Name: status.Name, Configured: status.Configured})
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, report)
}
