// Package docs holds the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@saferoute-service.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/routes/suggest": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Routes"],
                "summary": "Suggest the safest route option",
                "parameters": [
                    {
                        "description": "Traveler origin and context",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.SuggestRouteRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/heatmap": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Heatmap"],
                "summary": "Get the incident heatmap",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Requester gender used for demographic weighting",
                        "name": "gender",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": ["day", "night"],
                        "description": "day or night",
                        "name": "time_of_day",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/alerts/panic": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "Raise a panic alert",
                "parameters": [
                    {
                        "description": "Alert origin",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.PanicAlertRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Get incident catalog statistics",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    },
    "definitions": {
        "dto.SuggestRouteRequest": {
            "type": "object",
            "required": ["start_lat", "start_lon"],
            "properties": {
                "start_lat": {"type": "number"},
                "start_lon": {"type": "number"},
                "destination": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string", "example": "Female"},
                "visit_time": {"type": "string", "example": "22:30"}
            }
        },
        "dto.PanicAlertRequest": {
            "type": "object",
            "required": ["user_id"],
            "properties": {
                "user_id": {"type": "integer"},
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "SafeRoute Service API",
	Description:      "Risk-aware route suggestion service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
