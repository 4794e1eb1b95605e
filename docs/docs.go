// Package docs registers the swagger document served at /swagger/*any.
// Regenerate with: swag init -g cmd/main.go -o docs
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registrasi",
                "parameters": [
                    {"description": "Data pengguna", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Registrasi berhasil", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "400": {"description": "Data tidak valid", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "409": {"description": "Email sudah terdaftar", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Kredensial", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Login berhasil", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "401": {"description": "Email atau password salah", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/motorcycles": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["motorcycles"],
                "summary": "Daftar motor",
                "responses": {
                    "200": {"description": "Daftar motor", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["motorcycles"],
                "summary": "Tambah motor",
                "parameters": [
                    {"description": "Data motor", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.MotorcycleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Motor berhasil ditambahkan", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "409": {"description": "Nomor plat sudah terdaftar", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/motorcycles/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["motorcycles"],
                "summary": "Detail motor",
                "parameters": [{"type": "string", "description": "ID motor", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Detail motor", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "404": {"description": "Motor tidak ditemukan", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["motorcycles"],
                "summary": "Perbarui motor",
                "parameters": [
                    {"type": "string", "description": "ID motor", "name": "id", "in": "path", "required": true},
                    {"description": "Data motor", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.MotorcycleRequest"}}
                ],
                "responses": {
                    "200": {"description": "Data motor berhasil diperbarui", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["motorcycles"],
                "summary": "Hapus motor",
                "parameters": [{"type": "string", "description": "ID motor", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Motor berhasil dihapus", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            }
        },
        "/service-records": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["service-records"],
                "summary": "Riwayat servis",
                "parameters": [{"type": "string", "description": "Filter ID motor", "name": "motorcycle_id", "in": "query"}],
                "responses": {
                    "200": {"description": "Riwayat servis", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["service-records"],
                "summary": "Catat servis",
                "parameters": [
                    {"description": "Data servis", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ServiceRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Riwayat servis berhasil ditambahkan", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "400": {"description": "Field wajib diisi", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "Motor tidak ditemukan atau bukan milik Anda", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/complaints": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["complaints"],
                "summary": "Daftar keluhan",
                "parameters": [{"type": "string", "description": "Filter ID motor", "name": "motorcycle_id", "in": "query"}],
                "responses": {
                    "200": {"description": "Daftar keluhan", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["complaints"],
                "summary": "Kirim keluhan",
                "parameters": [
                    {"description": "Keluhan", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ComplaintRequest"}}
                ],
                "responses": {
                    "201": {"description": "Keluhan berhasil dianalisis", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            }
        },
        "/reminders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reminders"],
                "summary": "Daftar reminder",
                "parameters": [
                    {"type": "string", "description": "Filter ID motor", "name": "motorcycle_id", "in": "query"},
                    {"type": "boolean", "description": "Hanya reminder yang belum selesai", "name": "active_only", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Daftar reminder", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reminders"],
                "summary": "Tambah reminder",
                "parameters": [
                    {"description": "Data reminder", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ReminderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Reminder berhasil ditambahkan", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            }
        },
        "/reminders/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reminders"],
                "summary": "Perbarui reminder",
                "parameters": [
                    {"type": "string", "description": "ID reminder", "name": "id", "in": "path", "required": true},
                    {"description": "Status reminder", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.UpdateReminder"}}
                ],
                "responses": {
                    "200": {"description": "Reminder berhasil diperbarui", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "404": {"description": "Reminder tidak ditemukan", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reminders"],
                "summary": "Hapus reminder",
                "parameters": [{"type": "string", "description": "ID reminder", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Reminder berhasil dihapus", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "404": {"description": "Reminder tidak ditemukan", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.errorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "message": {"type": "string", "example": "Motor tidak ditemukan"}
            }
        },
        "http.successResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Motor berhasil ditambahkan"},
                "data": {}
            }
        },
        "http.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "budi@example.com"},
                "password": {"type": "string", "example": "rahasia123"},
                "name": {"type": "string", "example": "Budi"}
            }
        },
        "http.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "budi@example.com"},
                "password": {"type": "string", "example": "rahasia123"}
            }
        },
        "http.MotorcycleRequest": {
            "type": "object",
            "properties": {
                "brand": {"type": "string", "example": "Honda"},
                "model": {"type": "string", "example": "Vario 160"},
                "variant": {"type": "string", "example": "CBS"},
                "plate_number": {"type": "string", "example": "B 1234 ABC"},
                "year": {"type": "integer", "example": 2023},
                "stnk_expiry": {"type": "string", "format": "date", "example": "2028-03-01"},
                "usage_type": {"type": "string", "example": "harian"},
                "initial_km": {"type": "integer", "example": 12000},
                "current_km": {"type": "integer", "example": 12000}
            }
        },
        "http.ServiceRecordRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "format": "date", "example": "2026-05-10"},
                "km": {"type": "integer", "example": 15000},
                "actions": {"type": "array", "items": {"type": "string"}, "example": ["Ganti oli", "Servis CVT"]},
                "spareparts": {"type": "array", "items": {"type": "string"}, "example": ["Oli mesin"]},
                "notes": {"type": "string", "example": "Rem depan mulai tipis"},
                "cost": {"type": "integer", "example": 150000},
                "motorcycle_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"}
            }
        },
        "http.ComplaintRequest": {
            "type": "object",
            "properties": {
                "motorcycle_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "description": {"type": "string", "example": "Motor susah distarter kalau pagi"}
            }
        },
        "http.ReminderRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "time_based"},
                "due_km": {"type": "integer", "example": 18000},
                "due_date": {"type": "string", "format": "date", "example": "2027-01-01"},
                "description": {"type": "string", "example": "Perpanjang STNK"},
                "motorcycle_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"}
            }
        },
        "http.UpdateReminder": {
            "type": "object",
            "properties": {
                "is_completed": {"type": "boolean", "example": true}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MotorCare API",
	Description:      "API pencatatan servis motor, keluhan, dan reminder perawatan",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
