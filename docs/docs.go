// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/imports/tally": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Parse a Tally backup (.xml or .tsf) and import its stock items, ledgers and parties into the user's masters",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["imports"],
                "summary": "Import a Tally export",
                "parameters": [
                    {"type": "file", "description": "Tally export (.xml or .tsf)", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Import completed", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Missing file, empty file or unsupported type", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "Destination write failed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/imports/tally/parse": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Parse Tally export text without writing anything",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["imports"],
                "summary": "Parse Tally markup",
                "parameters": [
                    {"description": "Tally export text", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ParseTallyRequest"}}
                ],
                "responses": {
                    "200": {"description": "Parsed records", "schema": {"$ref": "#/definitions/handler.ParseTallyResponse"}},
                    "400": {"description": "No content", "schema": {"$ref": "#/definitions/handler.ParseTallyError"}}
                }
            }
        },
        "/imports/tally/preview": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Parse a Tally export and download the records as a spreadsheet; nothing is written",
                "consumes": ["multipart/form-data"],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "text/csv"],
                "tags": ["imports"],
                "summary": "Preview a Tally export",
                "parameters": [
                    {"type": "file", "description": "Tally export (.xml or .tsf)", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "xlsx (default) or csv", "name": "format", "in": "query"},
                    {"type": "string", "default": "ledgers", "description": "Record kind for csv: items, ledgers, parties, vouchers", "name": "kind", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Preview workbook or CSV", "schema": {"type": "file"}},
                    "400": {"description": "Missing file, empty file or unsupported type", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/items": {"get": {"security": [{"BearerAuth": []}], "tags": ["masters"], "summary": "List items", "responses": {"200": {"description": "List of items", "schema": {"$ref": "#/definitions/handler.Response"}}}}},
        "/accounts": {"get": {"security": [{"BearerAuth": []}], "tags": ["masters"], "summary": "List accounts", "responses": {"200": {"description": "List of accounts", "schema": {"$ref": "#/definitions/handler.Response"}}}}},
        "/clients": {"get": {"security": [{"BearerAuth": []}], "tags": ["masters"], "summary": "List clients", "responses": {"200": {"description": "List of clients", "schema": {"$ref": "#/definitions/handler.Response"}}}}},
        "/vendors": {"get": {"security": [{"BearerAuth": []}], "tags": ["masters"], "summary": "List vendors", "responses": {"200": {"description": "List of vendors", "schema": {"$ref": "#/definitions/handler.Response"}}}}}
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handler.APIError"}, "success": {"type": "boolean", "example": false}}
        },
        "handler.PagMeta": {
            "type": "object",
            "properties": {"limit": {"type": "integer"}, "offset": {"type": "integer"}, "total": {"type": "integer"}}
        },
        "handler.Response": {
            "type": "object",
            "properties": {"data": {}, "meta": {"$ref": "#/definitions/handler.PagMeta"}, "success": {"type": "boolean", "example": true}}
        },
        "handler.ParseTallyRequest": {
            "type": "object",
            "properties": {"xml_content": {"type": "string"}}
        },
        "handler.ParseTallyResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}},
                "ledgers": {"type": "array", "items": {"type": "object"}},
                "parties": {"type": "array", "items": {"type": "object"}},
                "vouchers": {"type": "array", "items": {"type": "object"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.ParseTallyError": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "no content"}, "success": {"type": "boolean", "example": false}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and the JWT.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledgerly Import API",
	Description:      "Imports Tally ledger exports into the Ledgerly masters.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
