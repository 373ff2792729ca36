package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/arabellachen/portfolio/internal/contact"
)

// Mailer hands a contact submission to whoever reads it.
type Mailer interface {
	Send(ctx context.Context, id string, form contact.Form) error
}

// logMailer writes submissions to the log instead of delivering them.
type logMailer struct {
	logger hclog.Logger
}

func (m logMailer) Send(ctx context.Context, id string, form contact.Form) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", form.Name)
	m.logger.Info("contact form submission",
		"id", id,
		"subject", subject,
		"name", form.Name,
		"email", form.Email,
		"message", form.Message,
	)
	return nil
}

// processContact validates and records a contact form post. It accepts JSON
// and form-encoded bodies.
func processContact(c *gin.Context, logger hclog.Logger, mailer Mailer) (form contact.Form, status int, resp contact.Response) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("contact handler panic", "panic", r)
			status, resp = http.StatusInternalServerError, contact.Response{Error: contact.MsgServerError}
		}
	}()

	if err := c.ShouldBind(&form); err != nil {
		logger.Debug("contact form bind failed", "error", err)
	}
	if !form.Complete() {
		return form, http.StatusBadRequest, contact.Response{Error: contact.MsgMissingFields}
	}

	id := uuid.NewString()
	if err := mailer.Send(c.Request.Context(), id, form); err != nil {
		logger.Error("error sending contact message", "id", id, "error", err)
		return form, http.StatusInternalServerError, contact.Response{Error: contact.MsgServerError}
	}
	return form, http.StatusOK, contact.Response{Success: true, Message: contact.MsgSent}
}

// handleContact answers with JSON, or with the contact form fragment for
// HTMX requests.
func handleContact(logger hclog.Logger, mailer Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, status, resp := processContact(c, logger, mailer)
		if c.GetHeader("HX-Request") != "true" {
			c.JSON(status, resp)
			return
		}

		view := contactView{Status: contact.Failed.String(), Message: resp.Error, Form: form}
		if resp.Success {
			view = contactView{Status: contact.Submitted.String(), Message: resp.Message}
		}
		c.HTML(status, "contact-form.html", gin.H{"contact": view})
	}
}
