package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// TableDescriptor ties a physical table name to its model. The generic
// CRUD endpoint only ever operates on registered tables; arbitrary table
// names are rejected.
type TableDescriptor struct {
	Table     string
	NewRecord func() interface{}
	NewSlice  func() interface{}
}

var tableRegistry = map[string]TableDescriptor{
	"orders": {
		Table:     "orders",
		NewRecord: func() interface{} { return &models.Order{} },
		NewSlice:  func() interface{} { return &[]models.Order{} },
	},
	"testimonials": {
		Table:     "testimonials",
		NewRecord: func() interface{} { return &models.Testimonial{} },
		NewSlice:  func() interface{} { return &[]models.Testimonial{} },
	},
	"hero_images": {
		Table:     "hero_images",
		NewRecord: func() interface{} { return &models.HeroImage{} },
		NewSlice:  func() interface{} { return &[]models.HeroImage{} },
	},
	"product_images": {
		Table:     "product_images",
		NewRecord: func() interface{} { return &models.ProductImage{} },
		NewSlice:  func() interface{} { return &[]models.ProductImage{} },
	},
	"footer_settings": {
		Table:     "footer_settings",
		NewRecord: func() interface{} { return &models.FooterSettings{} },
		NewSlice:  func() interface{} { return &[]models.FooterSettings{} },
	},
	"contact_submissions": {
		Table:     "contact_submissions",
		NewRecord: func() interface{} { return &models.ContactSubmission{} },
		NewSlice:  func() interface{} { return &[]models.ContactSubmission{} },
	},
	"newsletter_requests": {
		Table:     "newsletter_requests",
		NewRecord: func() interface{} { return &models.NewsletterRequest{} },
		NewSlice:  func() interface{} { return &[]models.NewsletterRequest{} },
	},
	"bot_responses": {
		Table:     "bot_responses",
		NewRecord: func() interface{} { return &models.BotResponse{} },
		NewSlice:  func() interface{} { return &[]models.BotResponse{} },
	},
	"chat_messages": {
		Table:     "chat_messages",
		NewRecord: func() interface{} { return &models.ChatMessage{} },
		NewSlice:  func() interface{} { return &[]models.ChatMessage{} },
	},
	"visitor_tracking": {
		Table:     "visitor_tracking",
		NewRecord: func() interface{} { return &models.VisitorRecord{} },
		NewSlice:  func() interface{} { return &[]models.VisitorRecord{} },
	},
	"admin_users": {
		Table:     "admin_users",
		NewRecord: func() interface{} { return &models.AdminUser{} },
		NewSlice:  func() interface{} { return &[]models.AdminUser{} },
	},
}

// LookupTable returns the descriptor for a physical table name.
func LookupTable(name string) (TableDescriptor, bool) {
	desc, ok := tableRegistry[name]
	return desc, ok
}

// GenericCRUD handles every method on /api.php. It reproduces the contract
// of the hosted table-driven CRUD endpoint the site frontend was written
// against: `?table=<name>[&id=<id>]` plus a handful of `action` shortcuts.
// Responses are bare JSON (arrays, objects or `{"error": ...}`), not the
// enveloped form the typed routes use.
func GenericCRUD(c *gin.Context) {
	switch c.Query("action") {
	case "ping":
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
		return
	case "admin_login":
		genericAdminLogin(c)
		return
	case "admin_setup":
		genericAdminSetup(c)
		return
	case "upload":
		genericUpload(c)
		return
	}

	table := c.Query("table")
	if table == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table parameter is required"})
		return
	}
	desc, ok := LookupTable(table)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown table"})
		return
	}

	db := config.GetDB()

	switch c.Request.Method {
	case http.MethodGet:
		if id := c.Query("id"); id != "" {
			record := desc.NewRecord()
			if err := db.Table(desc.Table).First(record, "id = ?", id).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
				return
			}
			c.JSON(http.StatusOK, record)
			return
		}
		slice := desc.NewSlice()
		if err := db.Table(desc.Table).Order("id ASC").Find(slice).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}
		c.JSON(http.StatusOK, slice)

	case http.MethodPost:
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		// Schema shapes are idempotent migrations of the registered model,
		// not raw DDL.
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(body, &probe); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
			return
		}
		if _, isCreate := probe["create_table"]; isCreate {
			migrateTable(c, desc)
			return
		}
		if _, isAlter := probe["alter_table"]; isAlter {
			migrateTable(c, desc)
			return
		}

		record := desc.NewRecord()
		if err := json.Unmarshal(body, record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
			return
		}
		if err := db.Create(record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "insert failed"})
			return
		}
		c.JSON(http.StatusOK, record)

	case http.MethodPut:
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id parameter is required"})
			return
		}
		record := desc.NewRecord()
		if err := db.Table(desc.Table).First(record, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		// Partial update: absent fields keep their stored values.
		if err := c.ShouldBindJSON(record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
			return
		}
		if err := db.Save(record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		c.JSON(http.StatusOK, record)

	case http.MethodDelete:
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id parameter is required"})
			return
		}
		record := desc.NewRecord()
		if err := db.Table(desc.Table).First(record, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		if err := db.Delete(record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	}
}

func migrateTable(c *gin.Context, desc TableDescriptor) {
	if err := config.GetDB().AutoMigrate(desc.NewRecord()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "migration failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// genericAdminLogin mirrors AdminLogin but lives on the CRUD endpoint as
// `?action=admin_login` for frontends running without the typed API.
func genericAdminLogin(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
		return
	}
	AdminLogin(c)
}

func genericAdminSetup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
		return
	}
	AdminSetup(c)
}

func genericUpload(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
		return
	}
	UploadImage(c)
}
