// Package apitest runs an in-memory stand-in for the report board backend.
// It speaks the same wire contract (paths, status codes, {error} bodies,
// cookie session) so client code can be exercised end to end in tests.
package apitest

import (
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"reportboard/client/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session"

var (
	adjectives = []string{"瘋狂的", "可愛的", "懶惰的", "勇敢的", "神秘的", "悄悄的"}
	animals    = []string{"水獺", "貓咪", "狐狸", "刺蝟", "貓頭鷹", "兔子"}
)

type storedReport struct {
	id       int
	room     string
	content  string
	nickname string
	likes    int
}

type override struct {
	status int
	body   any
}

// Server is a running fake backend. The zero value is not usable; call New.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	users     map[string]string
	sessions  map[string]string
	reports   []*storedReport
	liked     map[string]map[int]bool
	nextID    int
	hits      map[string]int
	overrides map[string]override

	// ReportLimit caps POST /report calls; 0 disables the limiter.
	ReportLimit int
	reportCount int
}

// New starts a fake backend that is shut down when the test ends.
func New(t testing.TB) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		users:     make(map[string]string),
		sessions:  make(map[string]string),
		liked:     make(map[string]map[int]bool),
		nextID:    1,
		hits:      make(map[string]int),
		overrides: make(map[string]override),
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(s.countHits, s.applyOverrides)

	r.GET("/reports", s.listReports)
	r.POST("/report", s.addReport)
	r.POST("/report/:id/like", s.likeReport)
	r.POST("/register", s.register)
	r.POST("/login", s.login)
	r.POST("/logout", s.logout)
	r.GET("/me", s.me)
	return r
}

func routeKey(method, route string) string { return method + " " + route }

func (s *Server) countHits(c *gin.Context) {
	s.mu.Lock()
	s.hits[routeKey(c.Request.Method, c.FullPath())]++
	s.mu.Unlock()
	c.Next()
}

func (s *Server) applyOverrides(c *gin.Context) {
	s.mu.Lock()
	o, ok := s.overrides[routeKey(c.Request.Method, c.FullPath())]
	s.mu.Unlock()
	if !ok {
		c.Next()
		return
	}
	switch body := o.body.(type) {
	case nil:
		c.AbortWithStatus(o.status)
	case string:
		c.Data(o.status, "text/html; charset=utf-8", []byte(body))
		c.Abort()
	default:
		c.AbortWithStatusJSON(o.status, body)
	}
}

// Hits returns how many requests reached route, e.g. Hits("POST", "/report/:id/like").
func (s *Server) Hits(method, route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[routeKey(method, route)]
}

// TotalHits returns the number of requests served on any route.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

// Override makes route answer with status and body until cleared.
// A string body is sent as HTML, nil sends no body, anything else is JSON.
func (s *Server) Override(method, route string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[routeKey(method, route)] = override{status: status, body: body}
}

// ClearOverride restores the normal handler for route.
func (s *Server) ClearOverride(method, route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides, routeKey(method, route))
}

// AddUser registers an account directly.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// AddReport stores a report as if it had been submitted, and returns its id.
func (s *Server) AddReport(room, content, nickname string, likes int) models.ReportID {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.store(room, content, nickname)
	r.likes = likes
	return models.ReportID(strconv.Itoa(r.id))
}

// Likes returns the stored like count of a report, or -1 if it does not exist.
func (s *Server) Likes(id models.ReportID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := strconv.Atoi(id.String())
	if err != nil {
		return -1
	}
	if r := s.find(n); r != nil {
		return r.likes
	}
	return -1
}

func (s *Server) store(room, content, nickname string) *storedReport {
	r := &storedReport{id: s.nextID, room: room, content: content, nickname: nickname}
	s.nextID++
	s.reports = append(s.reports, r)
	return r
}

func (s *Server) find(id int) *storedReport {
	for _, r := range s.reports {
		if r.id == id {
			return r
		}
	}
	return nil
}

func (r *storedReport) wire() gin.H {
	return gin.H{
		"id":       r.id,
		"room":     html.EscapeString(r.room),
		"content":  html.EscapeString(r.content),
		"nickname": html.EscapeString(r.nickname),
		"likes":    r.likes,
	}
}

// currentUser resolves the session cookie. Callers hold s.mu.
func (s *Server) currentUser(c *gin.Context) string {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return s.sessions[token]
}

func (s *Server) listReports(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// newest first
	out := make([]gin.H, 0, len(s.reports))
	for i := len(s.reports) - 1; i >= 0; i-- {
		out = append(out, s.reports[i].wire())
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) addReport(c *gin.Context) {
	var req models.NewReport
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ReportLimit > 0 && s.reportCount >= s.ReportLimit {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}
	s.reportCount++

	room := strings.TrimSpace(req.Room)
	content := strings.TrimSpace(req.Content)
	if room == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room and content required"})
		return
	}
	if len([]rune(room)) > 20 || len([]rune(content)) > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input too long"})
		return
	}

	nickname := adjectives[rand.Intn(len(adjectives))] + animals[rand.Intn(len(animals))]
	r := s.store(room, content, nickname)
	c.JSON(http.StatusCreated, r.wire())
}

func (s *Server) likeReport(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUser(c)
	if user == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "login required"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	r := s.find(id)
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	if s.liked[user] == nil {
		s.liked[user] = make(map[int]bool)
	}
	if s.liked[user][id] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "already liked"})
		return
	}
	s.liked[user][id] = true
	r.likes++
	c.JSON(http.StatusOK, gin.H{"likes": r.likes})
}

func (s *Server) register(c *gin.Context) {
	var req models.Credentials
	_ = c.ShouldBindJSON(&req)
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}
	if len(username) > 80 || len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username or password length"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[username]; taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username taken"})
		return
	}
	s.users[username] = req.Password
	c.JSON(http.StatusCreated, gin.H{"message": "registered successfully"})
}

func (s *Server) login(c *gin.Context) {
	var req models.Credentials
	_ = c.ShouldBindJSON(&req)
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if pw, ok := s.users[username]; !ok || pw != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token := uuid.NewString()
	s.sessions[token] = username
	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged in", "username": username})
}

func (s *Server) logout(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := c.Cookie(sessionCookie)
	if err != nil || s.sessions[token] == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	delete(s.sessions, token)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) me(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user := s.currentUser(c); user != "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": user})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// String describes the server for test failure messages.
func (s *Server) String() string {
	return fmt.Sprintf("apitest.Server(%s)", s.URL)
}
