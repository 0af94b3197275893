package server

import (
	"encoding/json"
	"net/http"

	"github.com/krateoplatformops/oasdocs/internal/catalog"
	"github.com/krateoplatformops/oasdocs/internal/nav"
	"github.com/krateoplatformops/oasdocs/internal/tools/operations"
)

// apiLinks builds the API's own URLs, as opposed to the page hrefs placed
// in response bodies.
var apiLinks = nav.NewBuilder("/api")

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type documentsResponse struct {
	Documents []catalog.DocumentInfo `json:"documents"`
}

type documentResponse struct {
	Document catalog.DocumentInfo `json:"document"`
	Metadata nav.Metadata         `json:"metadata"`
	Href     string               `json:"href"`
	Sidebar  []nav.Entry          `json:"sidebar"`
	Guides   []nav.Link           `json:"guides"`
}

type operationsResponse struct {
	Document   string                        `json:"document"`
	Operations []operations.IndexedOperation `json:"operations"`
}

type operationResponse struct {
	Document  string                      `json:"document"`
	Operation operations.IndexedOperation `json:"operation"`
	Metadata  nav.Metadata                `json:"metadata"`
	Tone      nav.Tone                    `json:"tone"`
	Href      string                      `json:"href"`
	Sidebar   []nav.Entry                 `json:"sidebar"`
}

type guidesResponse struct {
	Document string     `json:"document"`
	Guides   []nav.Link `json:"guides"`
}

type guideResponse struct {
	Document string        `json:"document"`
	Guide    catalog.Guide `json:"guide"`
	Metadata nav.Metadata  `json:"metadata"`
	Guides   []nav.Link    `json:"guides"`
}

type instructionGroupsResponse struct {
	Groups []nav.Link `json:"groups"`
}

type instructionResponse struct {
	Group        string              `json:"group"`
	SpecURL      string              `json:"specUrl,omitempty"`
	Instruction  catalog.Instruction `json:"instruction"`
	Metadata     nav.Metadata        `json:"metadata"`
	Groups       []nav.Link          `json:"groups"`
	Instructions []nav.Link          `json:"instructions"`
}

type routesResponse struct {
	Routes []string `json:"routes"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, documentsResponse{Documents: s.catalog.Documents()})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	info, ok := s.catalog.Document(key)
	if !ok {
		s.writeError(w, http.StatusNotFound, "document not found: "+key)
		return
	}

	s.writeJSON(w, r, documentResponse{
		Document: info,
		Metadata: nav.DocumentMetadata(info),
		Href:     s.nav.DocumentHref(key),
		Sidebar:  s.nav.Sidebar(key, s.catalog.ListOperations(key), ""),
		Guides:   s.nav.GuideLinks(key, s.catalog.Guides(key), ""),
	})
}

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if _, ok := s.catalog.Document(key); !ok {
		s.writeError(w, http.StatusNotFound, "document not found: "+key)
		return
	}

	s.writeJSON(w, r, operationsResponse{
		Document:   key,
		Operations: s.catalog.ListOperations(key),
	})
}

func (s *Server) handleOperation(w http.ResponseWriter, r *http.Request) {
	key, slug := r.PathValue("key"), r.PathValue("slug")
	info, ok := s.catalog.Document(key)
	if !ok {
		s.writeError(w, http.StatusNotFound, "document not found: "+key)
		return
	}
	op, ok := s.catalog.GetOperation(key, slug)
	if !ok {
		s.writeError(w, http.StatusNotFound, "operation not found: "+slug)
		return
	}

	s.writeJSON(w, r, operationResponse{
		Document:  key,
		Operation: op,
		Metadata:  nav.OperationMetadata(op, info),
		Tone:      nav.MethodTone(op.Method),
		Href:      s.nav.OperationHref(key, op.Slug),
		Sidebar:   s.nav.Sidebar(key, s.catalog.ListOperations(key), op.Slug),
	})
}

func (s *Server) handleGuides(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if _, ok := s.catalog.Document(key); !ok {
		s.writeError(w, http.StatusNotFound, "document not found: "+key)
		return
	}

	s.writeJSON(w, r, guidesResponse{
		Document: key,
		Guides:   s.nav.GuideLinks(key, s.catalog.Guides(key), ""),
	})
}

func (s *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	key, slug := r.PathValue("key"), r.PathValue("slug")
	info, ok := s.catalog.Document(key)
	if !ok {
		s.writeError(w, http.StatusNotFound, "document not found: "+key)
		return
	}
	g, ok := s.catalog.Guide(key, slug)
	if !ok {
		s.writeError(w, http.StatusNotFound, "guide not found: "+slug)
		return
	}

	s.writeJSON(w, r, guideResponse{
		Document: key,
		Guide:    g,
		Metadata: nav.Metadata{
			Title:       g.Title + " – " + info.Title,
			Description: g.Description,
		},
		Guides: s.nav.GuideLinks(key, s.catalog.Guides(key), g.Slug),
	})
}

func (s *Server) handleInstructionGroups(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, instructionGroupsResponse{
		Groups: s.nav.GroupLinks(s.catalog.InstructionGroups(), ""),
	})
}

// handleInstructionGroup sends a reader to the first instruction of a
// known group. Unknown groups are not found.
func (s *Server) handleInstructionGroup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("group")
	res := s.catalog.ResolveInstruction(name, "")
	if res.ActiveGroup == nil {
		s.writeError(w, http.StatusNotFound, "instruction group not found: "+name)
		return
	}

	group, slug, ok := res.Fallback()
	if !ok {
		s.writeError(w, http.StatusNotFound, "instruction group has no instructions: "+name)
		return
	}
	http.Redirect(w, r, apiLinks.InstructionHref(group, slug), http.StatusTemporaryRedirect)
}

// handleInstruction serves one instruction. A missing group or
// instruction redirects to the closest page that exists.
func (s *Server) handleInstruction(w http.ResponseWriter, r *http.Request) {
	res := s.catalog.ResolveInstruction(r.PathValue("group"), r.PathValue("slug"))

	if !res.Found() {
		group, slug, ok := res.Fallback()
		if !ok {
			s.writeError(w, http.StatusNotFound, "instruction not found")
			return
		}
		http.Redirect(w, r, apiLinks.InstructionHref(group, slug), http.StatusTemporaryRedirect)
		return
	}

	s.writeJSON(w, r, instructionResponse{
		Group:        res.ActiveGroup.Name,
		SpecURL:      res.ActiveGroup.SpecURL,
		Instruction:  *res.ActiveInstruction,
		Metadata:     nav.InstructionMetadata(res),
		Groups:       s.nav.GroupLinks(res.Groups, res.ActiveGroup.Name),
		Instructions: s.nav.InstructionLinks(*res.ActiveGroup, res.ActiveInstruction.Slug),
	})
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, routesResponse{Routes: s.nav.Routes(s.catalog)})
}

// writeJSON writes v with status 200 unless the client copy is current.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Info("Encoding response", "path", r.URL.Path, "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "encoding response")
		return
	}
	if s.notModified(w, r) {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Code: status, Message: msg})
}
