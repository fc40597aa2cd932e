// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/avatar-vote/middleware"
)

// ProxyHandler fetches gallery images on behalf of the browser to get past
// hotlink protection (sites that check the Referer header, like Pixiv).
type ProxyHandler struct {
	client *http.Client
}

func NewProxyHandler() *ProxyHandler {
	return &ProxyHandler{
		client: &http.Client{
			Timeout: 10 * time.Second,
			// Redirects come back through the proxy so the Referer holds.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Fetch handles GET /api/proxy?url=...
func (h *ProxyHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing url parameter")
		return
	}

	target, err := url.Parse(rawURL)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid URL")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid URL")
		return
	}

	referer := target.Scheme + "://" + target.Host
	if strings.Contains(target.Hostname(), "pximg.net") {
		referer = "https://www.pixiv.net/"
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Referer", referer)
	req.Header.Set("Accept", "image/*,*/*")

	resp, err := h.client.Do(req)
	if err != nil {
		slog.Warn("proxy fetch failed", "url", rawURL, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch image")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		if location := resp.Header.Get("Location"); location != "" {
			redirect, err := target.Parse(location)
			if err == nil {
				http.Redirect(w, r, "/api/proxy?url="+url.QueryEscape(redirect.String()), http.StatusFound)
				return
			}
		}
	}

	if resp.StatusCode >= 400 {
		slog.Warn("proxy target error", "url", rawURL, "status", resp.StatusCode)
		middleware.ErrorResponse(w, resp.StatusCode, "Failed to fetch image")
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if length := resp.Header.Get("Content-Length"); length != "" {
		w.Header().Set("Content-Length", length)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		slog.Warn("proxy stream interrupted", "url", rawURL, "error", err)
	}
}
