package types

import (
	"encoding/json"
	"net/url"
)

// DefaultSalesRange is used when the range query parameter is absent.
const DefaultSalesRange = "7d"

// ProductPriceQuery is the body of POST /compose/product-price.
// It is forwarded to the price service unchanged once defaults are applied.
type ProductPriceQuery struct {
	// ProductID is the unique product identifier (required).
	ProductID string `json:"product_id"`

	// Currency is an ISO currency code, e.g. "USD" (required).
	Currency string `json:"currency"`

	// IncludePromotions applies active promotions. Defaults to true when absent.
	IncludePromotions bool `json:"include_promotions"`
}

// UnmarshalJSON decodes the query and defaults IncludePromotions to true
// when the key is absent. An explicit null is rejected.
func (q *ProductPriceQuery) UnmarshalJSON(data []byte) error {
	var w struct {
		ProductID         string `json:"product_id"`
		Currency          string `json:"currency"`
		IncludePromotions *bool  `json:"include_promotions"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	promos := true
	if w.IncludePromotions != nil {
		promos = *w.IncludePromotions
	} else {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(data, &keys); err != nil {
			return err
		}
		if _, ok := keys["include_promotions"]; ok {
			return &ValidationError{
				Field:   "include_promotions",
				Message: "include_promotions must be a boolean",
				Code:    CodeInvalidValue,
			}
		}
	}

	*q = ProductPriceQuery{
		ProductID:         w.ProductID,
		Currency:          w.Currency,
		IncludePromotions: promos,
	}
	return nil
}

// Validate checks required fields.
func (q *ProductPriceQuery) Validate() error {
	if q.ProductID == "" {
		return missing("product_id")
	}
	if q.Currency == "" {
		return missing("currency")
	}
	return nil
}

// SendNotificationRequest is the body of POST /proxy/notifications/send.
type SendNotificationRequest struct {
	// ToEmail is the recipient address (required).
	ToEmail string `json:"to_email"`

	// Subject is the email subject (required).
	Subject string `json:"subject"`

	// Body is the plaintext email body (required).
	Body string `json:"body"`

	// TemplateID selects a provider template. Forwarded as null when absent.
	TemplateID *string `json:"template_id"`
}

// Validate checks required fields.
func (r *SendNotificationRequest) Validate() error {
	if r.ToEmail == "" {
		return missing("to_email")
	}
	if r.Subject == "" {
		return missing("subject")
	}
	if r.Body == "" {
		return missing("body")
	}
	return nil
}

// SalesSummaryQuery holds the query of GET /proxy/analytics/sales-summary.
// The range token is opaque to the gateway.
type SalesSummaryQuery struct {
	Range string
}

// ParseSalesSummaryQuery reads the range parameter, defaulting to
// DefaultSalesRange only when the parameter is absent.
func ParseSalesSummaryQuery(values url.Values) SalesSummaryQuery {
	if !values.Has("range") {
		return SalesSummaryQuery{Range: DefaultSalesRange}
	}
	return SalesSummaryQuery{Range: values.Get("range")}
}

// Values returns the query to forward downstream.
func (q SalesSummaryQuery) Values() url.Values {
	return url.Values{"range": {q.Range}}
}

// ValidationError represents a request validation error.
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

func missing(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: field + " is required",
		Code:    CodeMissingField,
	}
}
