// Package docs registers the OpenAPI description served at /swagger/.
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
        "/api/poll": {
            "get": {
                "description": "Every option with its vote count, voter names and share of all votes, most votes first; ties ordered by name.",
                "produces": ["application/json"],
                "tags": ["poll"],
                "summary": "Poll results",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.OptionTally"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/poll/vote": {
            "post": {
                "description": "Casts the guest's vote for the option, or withdraws it if already cast.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["poll"],
                "summary": "Toggle a vote",
                "parameters": [{"description": "Guest and option", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.VoteRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.VoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/poll/add-option": {
            "post": {
                "description": "Registers a new option and casts the submitting guest's vote for it. Names are unique ignoring case.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["poll"],
                "summary": "Add a poll option",
                "parameters": [{"description": "Option", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AddOptionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PollOption"}},
                    "400": {"description": "missing field or duplicate name", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/guests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "List guests",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Guest"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/rsvp": {
            "post": {
                "description": "Creates the guest, or updates the attending flag of the guest with the same name (ignoring case).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "RSVP",
                "parameters": [{"description": "RSVP", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RSVPRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Guest"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/guest/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Find a guest by name",
                "parameters": [{"type": "string", "description": "Guest name, case-insensitive", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Guest"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/comments": {
            "get": {
                "description": "Comments with author name and avatar colour, newest first.",
                "produces": ["application/json"],
                "tags": ["guestbook"],
                "summary": "List comments",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guestbook"],
                "summary": "Post a comment",
                "parameters": [{"description": "Comment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CommentRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/photos": {
            "get": {
                "description": "Photo links with author name and avatar colour, newest first.",
                "produces": ["application/json"],
                "tags": ["guestbook"],
                "summary": "List shared photos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Photo"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guestbook"],
                "summary": "Share a photo link",
                "parameters": [{"description": "Photo link", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.PhotoRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/backup": {
            "get": {
                "description": "The whole dataset as a JSON attachment.",
                "produces": ["application/json"],
                "tags": ["backup"],
                "summary": "Download a backup",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Backup"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/restore": {
            "post": {
                "description": "Replaces every table with the contents of the uploaded backup, keeping the original ids.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["backup"],
                "summary": "Restore a backup",
                "parameters": [{"description": "Backup document", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Backup"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RestoreResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.AddOptionRequest": {
            "type": "object",
            "required": ["guest_id", "name"],
            "properties": {"emoji": {"type": "string"}, "guest_id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "controllers.CommentRequest": {
            "type": "object",
            "required": ["comment", "guest_id"],
            "properties": {"comment": {"type": "string"}, "guest_id": {"type": "integer"}}
        },
        "controllers.IDResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "controllers.PhotoRequest": {
            "type": "object",
            "required": ["guest_id", "photo_url"],
            "properties": {"drive_id": {"type": "string"}, "guest_id": {"type": "integer"}, "photo_url": {"type": "string"}}
        },
        "controllers.RSVPRequest": {
            "type": "object",
            "required": ["attending", "name"],
            "properties": {"attending": {"type": "boolean"}, "name": {"type": "string"}}
        },
        "controllers.RestoreResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "success": {"type": "boolean"}}
        },
        "controllers.VoteRequest": {
            "type": "object",
            "required": ["guest_id", "option_id"],
            "properties": {"guest_id": {"type": "integer"}, "option_id": {"type": "integer"}}
        },
        "controllers.VoteResponse": {
            "type": "object",
            "properties": {"action": {"type": "string", "enum": ["added", "removed"]}}
        },
        "domain.Backup": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "guests": {"type": "array", "items": {"type": "object"}},
                "comments": {"type": "array", "items": {"type": "object"}},
                "photos": {"type": "array", "items": {"type": "object"}},
                "poll_options": {"type": "array", "items": {"type": "object"}},
                "poll_votes": {"type": "array", "items": {"type": "object"}}
            }
        },
        "domain.Comment": {
            "type": "object",
            "properties": {
                "avatar_color": {"type": "string"},
                "comment": {"type": "string"},
                "created_at": {"type": "string"},
                "guest_id": {"type": "integer"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "domain.Guest": {
            "type": "object",
            "properties": {
                "attending": {"type": "boolean"},
                "avatar_color": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "domain.OptionTally": {
            "type": "object",
            "properties": {
                "emoji": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "pct": {"type": "number"},
                "vote_count": {"type": "integer"},
                "voters": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.Photo": {
            "type": "object",
            "properties": {
                "avatar_color": {"type": "string"},
                "created_at": {"type": "string"},
                "drive_id": {"type": "string"},
                "guest_id": {"type": "integer"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "photo_url": {"type": "string"}
            }
        },
        "domain.PollOption": {
            "type": "object",
            "properties": {"emoji": {"type": "string"}, "id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Party Invite API",
	Description:      "RSVP, guestbook, photo links and the food poll.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
