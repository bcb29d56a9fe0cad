package handler

import (
	"net/http"
	"os"
	"runtime"
)

// Set with -ldflags "-X github.com/yumbiru/yumvalues/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// VersionInfo describes the running binary and the catalog it serves
type VersionInfo struct {
	Version            string `json:"version"`
	GoVersion          string `json:"go_version"`
	BuildTime          string `json:"build_time,omitempty"`
	GitCommit          string `json:"git_commit,omitempty"`
	CatalogVersion     string `json:"catalog_version"`
	CatalogLastUpdated string `json:"catalog_last_updated"`
}

// HandleVersion reports build and catalog versions
// @Summary Build and catalog version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(cat CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:            buildVersion(),
			GoVersion:          runtime.Version(),
			BuildTime:          BuildTime,
			GitCommit:          GitCommit,
			CatalogVersion:     cat.Version(),
			CatalogLastUpdated: cat.LastUpdated(),
		})
	}
}

// buildVersion prefers the linked-in version, then $VERSION
func buildVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
