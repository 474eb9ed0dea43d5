// Package githubtest provides an in-memory fake of the GitHub contents API
// for tests.
package githubtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"
	"time"
)

// File is a file or sub-directory inside a ship folder.
type File struct {
	Name string
	Data []byte
	Dir  bool
}

type folder struct {
	name  string
	files []File
	dir   bool
}

type repository struct {
	id       string
	hasShips bool
	entries  []*folder
}

// Server is a fake GitHub API. Repositories, ship folders and failures are
// registered before or during a test; every request is recorded.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	repos    map[string]*repository
	statuses map[string]int
	delays   map[string]time.Duration
	gates    map[string]chan struct{}
	requests []string
	header   http.Header
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		repos:    make(map[string]*repository),
		statuses: make(map[string]int),
		delays:   make(map[string]time.Duration),
		gates:    make(map[string]chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/{owner}/{name}", s.handleRepository)
	mux.HandleFunc("GET /repos/{owner}/{name}/contents/{path...}", s.handleContents)
	mux.HandleFunc("GET /raw/{owner}/{name}/{path...}", s.handleRaw)

	s.Server = httptest.NewServer(s.intercept(mux))
	t.Cleanup(s.Close)
	return s
}

// AddRepository registers an empty repository without a ships directory.
func (s *Server) AddRepository(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo(id)
}

// AddShip registers a ship folder under ships/ in repository id.
func (s *Server) AddShip(id, name string, files ...File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.repo(id)
	r.hasShips = true
	r.entries = append(r.entries, &folder{name: name, files: files, dir: true})
}

// AddShipsFile registers a plain file directly under ships/.
func (s *Server) AddShipsFile(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.repo(id)
	r.hasShips = true
	r.entries = append(r.entries, &folder{name: name})
}

// FailPath makes every request for urlPath answer with status.
func (s *Server) FailPath(urlPath string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[urlPath] = status
}

// DelayPath slows down requests for urlPath.
func (s *Server) DelayPath(urlPath string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[urlPath] = d
}

// BlockPath holds requests for urlPath until the returned release func is
// called or the request is cancelled.
func (s *Server) BlockPath(urlPath string) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gates[urlPath] = gate
	s.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Requests returns the request paths served so far, in arrival order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// LastHeader returns a header of the most recent request.
func (s *Server) LastHeader(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.header.Get(key)
}

// RepoPath returns the API path of repository id.
func RepoPath(id string) string {
	return "/repos/" + id
}

// ContentsPath returns the API path of p inside repository id.
func ContentsPath(id, p string) string {
	return "/repos/" + id + "/contents/" + strings.Trim(p, "/")
}

// RawPath returns the download path of p inside repository id.
func RawPath(id, p string) string {
	return "/raw/" + id + "/" + strings.Trim(p, "/")
}

func (s *Server) repo(id string) *repository {
	r, ok := s.repos[id]
	if !ok {
		r = &repository{id: id}
		s.repos[id] = r
	}
	return r
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		s.mu.Lock()
		s.requests = append(s.requests, p)
		s.header = r.Header.Clone()
		status, failing := s.statuses[p]
		delay := s.delays[p]
		gate := s.gates[p]
		s.mu.Unlock()

		if gate != nil {
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
		}
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if failing {
			writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRepository(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("owner") + "/" + r.PathValue("name")
	s.mu.Lock()
	_, ok := s.repos[id]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"full_name":      id,
		"default_branch": "main",
		"html_url":       "https://github.com/" + id,
	})
}

type content struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Type        string  `json:"type"`
	Size        int     `json:"size"`
	URL         string  `json:"url"`
	DownloadURL *string `json:"download_url"`
}

func (s *Server) handleContents(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("owner") + "/" + r.PathValue("name")
	p := strings.Trim(r.PathValue("path"), "/")

	s.mu.Lock()
	defer s.mu.Unlock()

	repo, ok := s.repos[id]
	if !ok || !repo.hasShips {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}

	segments := strings.Split(p, "/")
	switch {
	case p == "ships":
		out := make([]content, 0, len(repo.entries))
		for _, e := range repo.entries {
			out = append(out, s.entry(id, "ships/"+e.name, e.dir, 0))
		}
		writeJSON(w, http.StatusOK, out)
	case len(segments) == 2 && segments[0] == "ships":
		for _, e := range repo.entries {
			if e.name != segments[1] || !e.dir {
				continue
			}
			out := make([]content, 0, len(e.files))
			for _, f := range e.files {
				out = append(out, s.entry(id, path.Join(p, f.Name), f.Dir, len(f.Data)))
			}
			writeJSON(w, http.StatusOK, out)
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	}
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("owner") + "/" + r.PathValue("name")
	segments := strings.Split(strings.Trim(r.PathValue("path"), "/"), "/")

	s.mu.Lock()
	defer s.mu.Unlock()

	if repo, ok := s.repos[id]; ok && len(segments) == 3 && segments[0] == "ships" {
		for _, e := range repo.entries {
			if e.name != segments[1] {
				continue
			}
			for _, f := range e.files {
				if f.Name == segments[2] && !f.Dir {
					w.Header().Set("Content-Type", "application/octet-stream")
					_, _ = w.Write(f.Data)
					return
				}
			}
		}
	}
	http.NotFound(w, r)
}

func (s *Server) entry(id, p string, dir bool, size int) content {
	c := content{
		Name: path.Base(p),
		Path: p,
		Type: "file",
		Size: size,
		URL:  s.URL + ContentsPath(id, p),
	}
	if dir {
		c.Type = "dir"
		return c
	}
	download := s.URL + RawPath(id, p)
	c.DownloadURL = &download
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
