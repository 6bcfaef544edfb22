package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Faculty Reporting API",
        "description": "Role-scoped academic administration and report review API",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Registration and login"},
        {"name": "Users", "description": "User directory"},
        {"name": "Courses", "description": "Faculty-scoped courses"},
        {"name": "Classes", "description": "Course classes and lecturer assignments"},
        {"name": "Reports", "description": "Teaching report lifecycle"},
        {"name": "Ratings", "description": "Lecturer ratings"},
        {"name": "Faculty", "description": "Faculty overview counts"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"summary": "Readiness check", "responses": {"200": {"description": "Ready"}}}
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register account",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}],
                "responses": {
                    "200": {"description": "Registration successful"},
                    "400": {"description": "Invalid payload or email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"description": "Token and user info"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "role", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "User array"}, "401": {"description": "No token"}}
            }
        },
        "/api/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses (faculty-scoped)",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Course array"}}
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Add course (pl only)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}],
                "responses": {
                    "200": {"description": "Course added"},
                    "400": {"description": "Missing fields"},
                    "403": {"description": "Role mismatch"}
                }
            }
        },
        "/api/classes": {
            "post": {
                "tags": ["Classes"],
                "summary": "Add class (pl only)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}],
                "responses": {
                    "200": {"description": "Hydrated class row"},
                    "400": {"description": "Missing fields"},
                    "403": {"description": "Role mismatch"}
                }
            }
        },
        "/api/my-classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes assigned to the calling lecturer",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Class array"}, "403": {"description": "Lecturers only"}}
            }
        },
        "/api/reports": {
            "get": {
                "tags": ["Reports"],
                "summary": "List reports visible to the caller",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Report rows with lecturer name"}}
            },
            "post": {
                "tags": ["Reports"],
                "summary": "Submit report (lecturer only)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitReportRequest"}}],
                "responses": {
                    "200": {"description": "Report submitted, status pending"},
                    "400": {"description": "Missing fields"},
                    "403": {"description": "Role mismatch"}
                }
            }
        },
        "/api/reports/{id}/feedback": {
            "post": {
                "tags": ["Reports"],
                "summary": "Review report (prl only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReviewReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "Feedback recorded"},
                    "403": {"description": "Role mismatch"},
                    "404": {"description": "Unknown report"}
                }
            }
        },
        "/api/reports/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the caller's report listing",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {"200": {"description": "CSV or PDF attachment"}}
            }
        },
        "/api/ratings": {
            "post": {
                "tags": ["Ratings"],
                "summary": "Rate a lecturer",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRatingRequest"}}],
                "responses": {"200": {"description": "Rating recorded"}, "400": {"description": "Invalid score"}}
            }
        },
        "/api/ratings/target/{id}": {
            "get": {
                "tags": ["Ratings"],
                "summary": "List ratings for a lecturer",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Rating rows with rater name"}}
            }
        },
        "/api/faculty/{facultyName}": {
            "get": {
                "tags": ["Faculty"],
                "summary": "Faculty overview counts",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "facultyName", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "coursesCount, classesCount, reportsCount"}}
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password", "role", "faculty"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "lecturer", "prl", "pl"]},
                "faculty": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "required": ["name", "code", "faculty"],
            "properties": {
                "name": {"type": "string"},
                "code": {"type": "string"},
                "faculty": {"type": "string"}
            }
        },
        "CreateClassRequest": {
            "type": "object",
            "required": ["course_id", "name", "lecturer_id"],
            "properties": {
                "course_id": {"type": "string"},
                "name": {"type": "string"},
                "scheduled_time": {"type": "string"},
                "venue": {"type": "string"},
                "total_registered": {"type": "integer"},
                "lecturer_id": {"type": "string"}
            }
        },
        "SubmitReportRequest": {
            "type": "object",
            "required": ["class_name", "topic_taught"],
            "properties": {
                "class_name": {"type": "string"},
                "topic_taught": {"type": "string"},
                "actual_students_present": {"type": "integer"}
            }
        },
        "ReviewReportRequest": {
            "type": "object",
            "properties": {
                "feedback": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "reviewed"]}
            }
        },
        "CreateRatingRequest": {
            "type": "object",
            "required": ["target_id", "module", "score"],
            "properties": {
                "target_id": {"type": "string"},
                "module": {"type": "string"},
                "score": {"type": "integer", "minimum": 1, "maximum": 5},
                "comment": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
