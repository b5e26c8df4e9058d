package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/pagechat/internal/fetcher"
	"github.com/sells-group/pagechat/internal/model"
	"github.com/sells-group/pagechat/internal/session"
)

type scrapeRequest struct {
	URL string `json:"url"`
}

type searchRequest struct {
	Topic string `json:"topic"`
}

type chatRequest struct {
	Question string `json:"question"`
	Model    string `json:"model"`
}

type chatResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listModels(w http.ResponseWriter, _ *http.Request) {
	models := s.deps.Models
	if models == nil {
		models = []model.ModelDescriptor{}
	}
	writeJSON(w, http.StatusOK, models)
}

func (s *Server) scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}
	if !fetcher.IsValidURL(url) {
		writeError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}

	id := sessionID(r)
	if !s.clearSlot(w, r, id) {
		return
	}

	result := s.deps.Scraper.Scrape(r.Context(), url)
	if !result.Success {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	if !s.storeSlot(w, r, id, model.NewPageSlot(result)) {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) searchScrape(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		writeError(w, http.StatusBadRequest, "Search topic is required")
		return
	}

	id := sessionID(r)
	if !s.clearSlot(w, r, id) {
		return
	}

	result := s.deps.Searcher.Search(r.Context(), topic, s.deps.NumResults)
	if !result.Success {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	if !s.storeSlot(w, r, id, model.NewSearchSlot(result)) {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	slot, err := s.deps.Store.Get(r.Context(), sessionID(r))
	if err != nil {
		zap.L().Error("api: load session slot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if slot == nil {
		writeError(w, http.StatusBadRequest, "Please scrape a website first")
		return
	}

	var req chatRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeError(w, http.StatusBadRequest, "No question provided")
		return
	}

	answer := s.deps.Asker.Ask(r.Context(), question, req.Model, slot)
	writeJSON(w, http.StatusOK, chatResponse{Question: question, Answer: answer})
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	if !s.clearSlot(w, r, sessionID(r)) {
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Data cleared successfully"})
}

// clearSlot empties the session slot, writing a 500 on failure.
func (s *Server) clearSlot(w http.ResponseWriter, r *http.Request, id string) bool {
	if err := s.deps.Store.Clear(r.Context(), id); err != nil {
		zap.L().Error("api: clear session slot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	return true
}

func (s *Server) storeSlot(w http.ResponseWriter, r *http.Request, id string, slot *model.Slot) bool {
	if err := s.deps.Store.Set(r.Context(), id, slot); err != nil {
		zap.L().Error("api: store session slot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	return true
}

func sessionID(r *http.Request) string {
	id, _ := session.FromContext(r.Context())
	return id
}
