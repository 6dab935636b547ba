// Package swagger provides the OpenAPI document served at /docs.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": ["http"],
    "swagger": "2.0",
    "info": {
        "title": "FixBay Booking API",
        "description": "Slot availability and recommendation service for workshop appointments",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "paths": {
        "/availability/day": {
            "get": {
                "tags": ["Availability"],
                "summary": "Full-day slot availability",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true, "description": "Day to evaluate (YYYY-MM-DD)"},
                    {"name": "planId", "in": "query", "type": "string", "required": true, "description": "Service plan ID"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/availability/day/export": {
            "get": {
                "tags": ["Availability"],
                "summary": "Export the day sheet as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true},
                    {"name": "planId", "in": "query", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/availability/recommendations": {
            "post": {
                "tags": ["Availability"],
                "summary": "Recommend additional slots",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecommendationRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/plans": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List bookable service plans",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/plans/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get one service plan",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "dto.RecommendationRequest": {
            "type": "object",
            "required": ["date", "plan_id"],
            "properties": {
                "date": {"type": "string", "example": "2025-06-01"},
                "plan_id": {"type": "string"},
                "selection": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.SlotRange"}
                },
                "max_additional": {"type": "integer", "minimum": 0, "maximum": 24}
            }
        },
        "dto.SlotRange": {
            "type": "object",
            "required": ["start", "end"],
            "properties": {
                "start": {"type": "string", "example": "09:00"},
                "end": {"type": "string", "example": "10:00"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the OpenAPI document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
