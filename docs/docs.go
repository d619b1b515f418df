// Package docs holds the generated OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/user/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/user/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/chat": {
            "post": {
                "tags": ["chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ChatResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/documents/ingest": {
            "post": {
                "tags": ["documents"],
                "summary": "Ingest PDF documents",
                "consumes": ["multipart/form-data"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "files", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.IngestResponse"}},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/bookings": {
            "get": {
                "tags": ["bookings"],
                "summary": "List all bookings",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.BookingResponse"}}},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/api/v1/directory/book": {
            "post": {
                "tags": ["directory"],
                "summary": "Book a slot with a known doctor",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BookAppointmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AppointmentResponse"}},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/v1/directory/cancel": {
            "post": {
                "tags": ["directory"],
                "summary": "Cancel a directory appointment",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CancelAppointmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/directory/faq": {
            "get": {
                "tags": ["directory"],
                "summary": "Look up an FAQ answer",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "dto.RegisterRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "dto.LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "dto.AuthResponse": {"type": "object", "properties": {"access_token": {"type": "string"}, "refresh_token": {"type": "string"}, "token_type": {"type": "string"}, "expires_in": {"type": "integer"}, "user": {"$ref": "#/definitions/dto.UserResponse"}}},
        "dto.UserResponse": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "is_admin": {"type": "boolean"}}},
        "dto.ChatRequest": {"type": "object", "properties": {"session_id": {"type": "string"}, "message": {"type": "string"}}},
        "dto.ChatResponse": {"type": "object", "properties": {"reply": {"type": "string"}, "booking_id": {"type": "string"}, "warning": {"type": "string"}}},
        "dto.IngestResponse": {"type": "object", "properties": {"documents": {"type": "integer"}, "chunks": {"type": "integer"}}},
        "dto.BookingResponse": {"type": "object", "properties": {"id": {"type": "string"}, "customer_id": {"type": "string"}, "booking_type": {"type": "string"}, "date": {"type": "string"}, "time": {"type": "string"}, "status": {"type": "string"}, "doctor_name": {"type": "string"}, "created_at": {"type": "string"}}},
        "dto.BookAppointmentRequest": {"type": "object", "properties": {"patient_name": {"type": "string"}, "doctor_name": {"type": "string"}, "slot": {"type": "string"}, "email": {"type": "string"}}},
        "dto.CancelAppointmentRequest": {"type": "object", "properties": {"patient_name": {"type": "string"}, "doctor_name": {"type": "string"}, "slot": {"type": "string"}}},
        "dto.AppointmentResponse": {"type": "object", "properties": {"patient_name": {"type": "string"}, "doctor_name": {"type": "string"}, "slot": {"type": "string"}, "email": {"type": "string"}, "created_at": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AI Booking Assistant API",
	Description:      "Conversational booking assistant with document Q&A",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
