package models

// All returns one zero value of every persisted model, in migration order.
// Used by startup auto-migration and by the generic CRUD endpoint's
// create_table handling.
func All() []interface{} {
	return []interface{}{
		&AdminUser{},
		&Order{},
		&Testimonial{},
		&HeroImage{},
		&ProductImage{},
		&FooterSettings{},
		&ContactSubmission{},
		&NewsletterRequest{},
		&BotResponse{},
		&ChatMessage{},
		&VisitorRecord{},
	}
}
