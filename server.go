package main

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"github.com/arabellachen/portfolio/internal/ambient"
	"github.com/arabellachen/portfolio/internal/companion"
	"github.com/arabellachen/portfolio/internal/contact"
	"github.com/arabellachen/portfolio/internal/content"
	"github.com/arabellachen/portfolio/internal/navigator"
	"github.com/arabellachen/portfolio/internal/scene"
)

//go:embed templates/*.html
var templatesFS embed.FS

const modeCookie = "mode"

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"style":      func(e scene.Entity) template.CSS { return template.CSS(ambient.Style(e)) },
		"burstStyle": func(e scene.Entity) template.CSS { return template.CSS(burstStyle(e)) },
		"glyph":      noteGlyph,
		"ms":         func(d time.Duration) int64 { return d.Milliseconds() },
		"join":       strings.Join,
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

type navItem struct {
	Name   navigator.Section
	Title  string
	Active bool
}

type contactView struct {
	Status  string
	Message string
	Form    contact.Form
}

func navItems(section navigator.Section) []navItem {
	nav := make([]navItem, 0, len(navigator.All()))
	for _, s := range navigator.All() {
		nav = append(nav, navItem{Name: s, Title: s.Title(), Active: s == section})
	}
	return nav
}

var noteGlyphs = []string{"♪", "♫", "♬", "♩", "♭", "♮"}

func noteGlyph(i int) string {
	return noteGlyphs[i%len(noteGlyphs)]
}

// burstStyle renders a burst note as CSS custom properties for the
// note-burst keyframes.
func burstStyle(e scene.Entity) string {
	return fmt.Sprintf("left:%.0f%%;top:%.0f%%;--dx:%.1fpx;--scale:%.2f;--rotation:%.0fdeg;--delay:%.1fs;--d-move:%.1fs",
		e.X, e.Y, e.DriftX, e.Size, e.Rotation, e.Delay.Seconds(), scene.BurstDuration.Seconds())
}

// musicData is the state of the music toggle. Notes are generated only while
// playing.
func musicData(playing bool) gin.H {
	data := gin.H{"playing": playing}
	if playing {
		data["notes"] = scene.GenerateBurst(nil)
	}
	return data
}

// sectionData is everything a section block needs.
func sectionData(section navigator.Section, acceptLanguage string) gin.H {
	lang, about := content.AboutFor(acceptLanguage)
	return gin.H{
		"section":      string(section),
		"nav":          navItems(section),
		"music":        musicData(false),
		"finance":      content.Finance,
		"galleryTitle": content.GalleryTitle,
		"galleryIntro": content.GalleryIntro,
		"photos":       content.Photos,
		"lang":         lang.String(),
		"about":        about,
		"jobs":         content.Jobs,
		"skills":       content.Skills,
		"skillGroups":  content.SkillGroups,
		"projects":     content.Projects,
		"school":       content.School,
		"songs":        content.Songs,
		"places":       content.Places,
		"foods":        content.Foods,
	}
}

func requestMode(c *gin.Context) scene.Mode {
	if q := c.Query("mode"); q != "" {
		if m, err := scene.ParseMode(q); err == nil {
			c.SetCookie(modeCookie, m.String(), 3600*24*365, "/", "", false, true)
			return m
		}
	}
	if v, err := c.Cookie(modeCookie); err == nil {
		if m, err := scene.ParseMode(v); err == nil {
			return m
		}
	}
	return scene.Light
}

func renderPage(c *gin.Context, section navigator.Section) {
	mode := requestMode(c)
	data := sectionData(section, c.GetHeader("Accept-Language"))
	data["owner"] = content.Owner
	data["fullName"] = content.FullName
	data["email"] = content.Email
	data["linkedIn"] = content.LinkedInURL
	data["github"] = content.GitHubURL
	data["taglines"] = content.Taglines
	data["pet"] = companion.DefaultConfig()
	data["mode"] = mode.String()
	data["toggleMode"] = mode.Toggle().String()
	data["entities"] = scene.GenerateMode(mode, nil)
	data["contact"] = contactView{Status: contact.Idle.String()}
	c.HTML(http.StatusOK, "index.html", data)
}

// corsMiddleware allows the API to be called from a separately served
// front end.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, HX-Request, HX-Target, HX-Current-URL")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func newRouter(cfg Config, logger hclog.Logger, mailer Mailer) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(corsMiddleware())

	if cfg.TrackVisitors {
		tracker, err := newVisitTracker(logger.Named("visits"))
		if err != nil {
			return nil, err
		}
		r.Use(tracker.middleware())
	}

	r.Static("/static", cfg.StaticDir)

	// Home page
	r.GET("/", func(c *gin.Context) {
		section, _ := navigator.Parse(c.DefaultQuery("section", string(navigator.About)))
		renderPage(c, section)
	})

	// HTMX section fragments
	r.GET("/section/:name", func(c *gin.Context) {
		section, ok := navigator.Parse(c.Param("name"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
			return
		}
		data := sectionData(section, c.GetHeader("Accept-Language"))
		data["oob"] = true
		c.HTML(http.StatusOK, "section-fragment.html", data)
	})

	// HTMX music toggle
	r.GET("/music", func(c *gin.Context) {
		c.HTML(http.StatusOK, "music.html", gin.H{"music": musicData(c.Query("playing") == "true")})
	})

	// HTMX contact form, idle
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form.html", gin.H{
			"contact": contactView{Status: contact.Idle.String()},
		})
	})

	r.GET("/api/scene", func(c *gin.Context) {
		mode := requestMode(c)
		c.JSON(http.StatusOK, gin.H{
			"mode":     mode.String(),
			"entities": scene.GenerateMode(mode, nil),
		})
	})

	contactLogger := logger.Named("contact")
	r.POST(contact.Path, handleContact(contactLogger, mailer))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Catch-all serves the page for client-side paths
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		renderPage(c, navigator.About)
	})

	return r, nil
}
