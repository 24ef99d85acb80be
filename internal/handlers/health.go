package handlers

import "net/http"

// Version is the API version reported by the banner endpoint.
const Version = "2.0.0"

// BannerResponse is the health/version payload served at the root path.
type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Root serves the health/version banner.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BannerResponse{
		Message: "Backend running",
		Version: Version,
	})
}

// Healthz is a bare liveness probe.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
