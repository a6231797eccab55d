// Package docs registers the Swagger document served under /swagger. The
// paths mirror the handler annotations; regenerate with
// swag init -g cmd/accounting_backend/main.go -o cmd/docs after changing them.
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
        "/accounts": {
            "get": {
                "description": "Retrieves every account of the organization ordered by code",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "List the chart of accounts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListAccountsResponse"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list accounts",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/accounts/{accountID}": {
            "get": {
                "description": "Retrieves details for a specific account by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get an account by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve account",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/asset-transactions/post": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "posting"
                ],
                "summary": "Post an asset transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Asset transaction ID",
                        "name": "source",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostSourceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.PostedEntry"
                        }
                    },
                    "404": {
                        "description": "Asset transaction not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Asset transaction already posted",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Default account missing",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bank-transactions/post": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "posting"
                ],
                "summary": "Post a bank transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Bank transaction ID",
                        "name": "source",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostSourceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.PostedEntry"
                        }
                    },
                    "404": {
                        "description": "Bank transaction not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Bank transaction already posted",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Default account missing",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/contraagents/{contraagentID}/opening-balance": {
            "put": {
                "description": "Replaces any previous balance, posting against equity account 123. Zero on both sides removes it.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opening-balances"
                ],
                "summary": "Set the opening balance of a contraagent",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Contraagent ID",
                        "name": "contraagentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Debit and credit amounts",
                        "name": "balance",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetOpeningBalanceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OpeningBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid amounts or contraagent without role",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Contraagent not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Default account missing",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to set opening balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opening-balances"
                ],
                "summary": "Remove the opening balance of a contraagent",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Contraagent ID",
                        "name": "contraagentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OpeningBalanceResponse"
                        }
                    },
                    "404": {
                        "description": "Contraagent not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to remove opening balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/document-numbers/{docType}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "numbering"
                ],
                "summary": "Reset a document sequence",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document type",
                        "name": "docType",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Next number to issue",
                        "name": "sequence",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ResetSequenceRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to reset sequence",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/document-numbers/{docType}/next": {
            "post": {
                "description": "Atomically takes the next gapless number of the document type",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "numbering"
                ],
                "summary": "Issue the next document number",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document type, e.g. sales_invoice",
                        "name": "docType",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.DocumentNumberResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid document type",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to issue number",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/document-numbers/{docType}/peek": {
            "get": {
                "description": "Returns the number the next call to /next would issue without consuming it",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "numbering"
                ],
                "summary": "Preview the next document number",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document type",
                        "name": "docType",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DocumentNumberResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid document type",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to preview number",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/document-uids": {
            "post": {
                "description": "Builds a UID from the document type, the organization and an optional number",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "numbering"
                ],
                "summary": "Generate a document UID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "UID parts",
                        "name": "uid",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.GenerateUIDRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.DocumentUIDResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/exports/nra/{year}/{month}/{file}": {
            "get": {
                "description": "Produces the fixed-width sales register, purchase register or declaration in Windows-1251",
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "exports"
                ],
                "summary": "Download an NRA VAT file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month",
                        "name": "month",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "sales, purchases or declaration",
                        "name": "file",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid period or file",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to export file",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/exports/saft/{variant}": {
            "get": {
                "description": "Monthly files need year and month; annual and on-demand files take a year or a from/to range",
                "produces": [
                    "application/xml"
                ],
                "tags": [
                    "exports"
                ],
                "summary": "Download a SAF-T audit file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "monthly, annual or on_demand",
                        "name": "variant",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Month (monthly only)",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Range start (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Range end (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid variant or range",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to export SAF-T",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "get the status of server.",
                "consumes": [
                    "*/*"
                ],
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/journal-entries": {
            "post": {
                "description": "Validates, balances and persists a manual journal entry. Amounts are rounded to 2 decimals.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Post a journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Entry and its lines",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.PostedEntry"
                        }
                    },
                    "400": {
                        "description": "Invalid input or unbalanced entry",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Organization or account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to post entry",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "Lists entries newest first with token pagination",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "List journal entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "First entry date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last entry date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Only entries touching this account",
                        "name": "accountID",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Reference filter",
                        "name": "reference",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListEntriesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list entries",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/journal-entries/{entryID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Get a journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PostedEntry"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve entry",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Posted entries are immutable; an existing entry always yields 409",
                "tags": [
                    "journal"
                ],
                "summary": "Update a journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Entry already posted",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Posted entries are immutable; an existing entry always yields 409",
                "tags": [
                    "journal"
                ],
                "summary": "Delete a journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Entry already posted",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/journal-entries/{entryID}/reverse": {
            "post": {
                "description": "Posts the mirror entry and marks the original as reversed",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Reverse a journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.PostedEntry"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Entry already reversed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to reverse entry",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/opening-balances": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opening-balances"
                ],
                "summary": "List contraagent opening balances",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Only customers",
                        "name": "customersOnly",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Only suppliers",
                        "name": "suppliersOnly",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Only contraagents with a non-zero balance",
                        "name": "withBalance",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListOpeningBalancesResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list opening balances",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/opening-balances/totals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opening-balances"
                ],
                "summary": "Opening balance totals per role",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.OpeningBalanceTotals"
                        }
                    },
                    "500": {
                        "description": "Failed to compute totals",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/payments/post": {
            "post": {
                "description": "Posts a customer or supplier payment through its recipe and links the entry",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "posting"
                ],
                "summary": "Post a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Payment ID",
                        "name": "source",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostSourceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.PostedEntry"
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Payment already posted",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Default account missing",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/balance-sheet": {
            "get": {
                "description": "Generates a balance sheet from closing balances as of a specific date",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate balance sheet report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Report date (YYYY-MM-DD)",
                        "name": "asOf",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BalanceSheetResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/profit-and-loss": {
            "get": {
                "description": "Generates a profit and loss report for a specific period",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate profit and loss report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProfitAndLossResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/trial-balance": {
            "get": {
                "description": "Generates an opening, period and closing turnover sheet for a date range",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate trial balance report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TrialBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/vat/purchases": {
            "post": {
                "description": "Classifies a finalized purchase document and upserts its purchase register row",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vat"
                ],
                "summary": "Record a purchase document in the VAT register",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Purchase document",
                        "name": "document",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PurchaseDocumentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.VatPurchaseRegister"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Document not finalized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to record purchase",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/vat/registers/{year}/{month}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vat"
                ],
                "summary": "List the VAT registers of a period",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.VatRegistersResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid period",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list registers",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/vat/returns/{year}/{month}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vat"
                ],
                "summary": "Get the VAT return of a period",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.VatReturn"
                        }
                    },
                    "404": {
                        "description": "Return not computed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/vat/returns/{year}/{month}/accept": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vat"
                ],
                "summary": "Mark the VAT return of a period as accepted",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.VatReturn"
                        }
                    },
                    "404": {
                        "description": "Return not computed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Return is not submitted",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/vat/returns/{year}/{month}/compute": {
            "post": {
                "description": "Recomputes the draft return from the registers; fails while documents of the period are unposted",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vat"
                ],
                "summary": "Compute the VAT return of a period",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.VatReturn"
                        }
                    },
                    "409": {
                        "description": "Unposted documents or return already submitted",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to compute VAT return",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/vat/returns/{year}/{month}/submit": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vat"
                ],
                "summary": "Submit the VAT return of a period",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.VatReturn"
                        }
                    },
                    "404": {
                        "description": "Return not computed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Return is not a draft",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/vat/sales": {
            "post": {
                "description": "Classifies a finalized sales document and upserts its sales register row",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vat"
                ],
                "summary": "Record a sales document in the VAT register",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Organization ID",
                        "name": "X-Organization-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Acting user ID",
                        "name": "X-Actor-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Sales document",
                        "name": "document",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SalesDocumentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.VatSalesRegister"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Document not finalized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to record sale",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Contraagent": {
            "type": "object",
            "properties": {
                "contraagentID": {
                    "type": "string"
                },
                "organizationID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "isCompany": {
                    "type": "boolean"
                },
                "isCustomer": {
                    "type": "boolean"
                },
                "isSupplier": {
                    "type": "boolean"
                },
                "registrationNumber": {
                    "type": "string"
                },
                "vatNumber": {
                    "type": "string"
                },
                "streetName": {
                    "type": "string"
                },
                "buildingNumber": {
                    "type": "string"
                },
                "building": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "postalCode": {
                    "type": "string"
                },
                "region": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "iban": {
                    "type": "string"
                },
                "selfBillingIndicator": {
                    "type": "boolean"
                },
                "relatedParty": {
                    "type": "boolean"
                },
                "openingDebitBalance": {
                    "type": "string"
                },
                "openingCreditBalance": {
                    "type": "string"
                },
                "closingDebitBalance": {
                    "type": "string"
                },
                "closingCreditBalance": {
                    "type": "string"
                },
                "openingBalanceEntryID": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "domain.Counterparty": {
            "type": "object",
            "properties": {
                "contraagentID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "vatNumber": {
                    "type": "string"
                },
                "eik": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                }
            }
        },
        "domain.DocumentUIDParts": {
            "type": "object",
            "properties": {
                "documentType": {
                    "type": "string"
                },
                "orgPrefix": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "random": {
                    "type": "string"
                }
            }
        },
        "domain.EntryLine": {
            "type": "object",
            "properties": {
                "lineID": {
                    "type": "string"
                },
                "entryID": {
                    "type": "string"
                },
                "lineNo": {
                    "type": "integer"
                },
                "accountID": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                },
                "credit": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "contraagentID": {
                    "type": "string"
                },
                "vatRate": {
                    "type": "string"
                },
                "vatAmount": {
                    "type": "string"
                },
                "taxBase": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "domain.JournalEntry": {
            "type": "object",
            "properties": {
                "entryID": {
                    "type": "string"
                },
                "organizationID": {
                    "type": "string"
                },
                "entryDate": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "currencyCode": {
                    "type": "string"
                },
                "exchangeRate": {
                    "type": "string"
                },
                "reference": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "journalType": {
                    "type": "string"
                },
                "transactionType": {
                    "type": "string"
                },
                "originalEntryID": {
                    "type": "string"
                },
                "reversingEntryID": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "domain.OpeningBalanceTotals": {
            "type": "object",
            "properties": {
                "customerDebitTotal": {
                    "type": "string"
                },
                "customerCreditTotal": {
                    "type": "string"
                },
                "customerCount": {
                    "type": "integer"
                },
                "supplierDebitTotal": {
                    "type": "string"
                },
                "supplierCreditTotal": {
                    "type": "string"
                },
                "supplierCount": {
                    "type": "integer"
                }
            }
        },
        "domain.PostedEntry": {
            "type": "object",
            "properties": {
                "entry": {
                    "$ref": "#/definitions/domain.JournalEntry"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.EntryLine"
                    }
                }
            }
        },
        "domain.VatPurchaseRegister": {
            "type": "object",
            "properties": {
                "registerID": {
                    "type": "string"
                },
                "organizationID": {
                    "type": "string"
                },
                "periodYear": {
                    "type": "integer"
                },
                "periodMonth": {
                    "type": "integer"
                },
                "documentID": {
                    "type": "string"
                },
                "documentType": {
                    "type": "string"
                },
                "documentNumber": {
                    "type": "string"
                },
                "documentDate": {
                    "type": "string"
                },
                "taxEventDate": {
                    "type": "string"
                },
                "counterparty": {
                    "$ref": "#/definitions/domain.Counterparty"
                },
                "taxableBase": {
                    "type": "string"
                },
                "vatRate": {
                    "type": "string"
                },
                "vatAmount": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string"
                },
                "vatOperationCode": {
                    "type": "string"
                },
                "columnCode": {
                    "type": "string"
                },
                "viesIndicator": {
                    "type": "string"
                },
                "reverseChargeSubcode": {
                    "type": "string"
                },
                "isTriangularOperation": {
                    "type": "boolean"
                },
                "isArt21Service": {
                    "type": "boolean"
                },
                "notes": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "purchaseOperation": {
                    "type": "string"
                },
                "isDeductible": {
                    "type": "boolean"
                },
                "deductibleVatAmount": {
                    "type": "string"
                },
                "deductibleCreditType": {
                    "type": "string"
                }
            }
        },
        "domain.VatReturn": {
            "type": "object",
            "properties": {
                "vatReturnID": {
                    "type": "string"
                },
                "organizationID": {
                    "type": "string"
                },
                "periodYear": {
                    "type": "integer"
                },
                "periodMonth": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "salesCount": {
                    "type": "integer"
                },
                "purchasesCount": {
                    "type": "integer"
                },
                "totalSalesTaxable": {
                    "type": "string"
                },
                "totalSalesVat": {
                    "type": "string"
                },
                "totalPurchasesTaxable": {
                    "type": "string"
                },
                "totalPurchasesVat": {
                    "type": "string"
                },
                "totalDeductibleVat": {
                    "type": "string"
                },
                "vatPayable": {
                    "type": "string"
                },
                "vatRefundable": {
                    "type": "string"
                },
                "submissionDate": {
                    "type": "string"
                },
                "dueDate": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "domain.VatSalesRegister": {
            "type": "object",
            "properties": {
                "registerID": {
                    "type": "string"
                },
                "organizationID": {
                    "type": "string"
                },
                "periodYear": {
                    "type": "integer"
                },
                "periodMonth": {
                    "type": "integer"
                },
                "documentID": {
                    "type": "string"
                },
                "documentType": {
                    "type": "string"
                },
                "documentNumber": {
                    "type": "string"
                },
                "documentDate": {
                    "type": "string"
                },
                "taxEventDate": {
                    "type": "string"
                },
                "counterparty": {
                    "$ref": "#/definitions/domain.Counterparty"
                },
                "taxableBase": {
                    "type": "string"
                },
                "vatRate": {
                    "type": "string"
                },
                "vatAmount": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string"
                },
                "vatOperationCode": {
                    "type": "string"
                },
                "columnCode": {
                    "type": "string"
                },
                "viesIndicator": {
                    "type": "string"
                },
                "reverseChargeSubcode": {
                    "type": "string"
                },
                "isTriangularOperation": {
                    "type": "boolean"
                },
                "isArt21Service": {
                    "type": "boolean"
                },
                "notes": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "salesOperation": {
                    "type": "string"
                }
            }
        },
        "dto.AccountAmountResponse": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                }
            }
        },
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "standardCode": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "openingBalance": {
                    "type": "string"
                },
                "balance": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                }
            }
        },
        "dto.BalanceSheetResponse": {
            "type": "object",
            "properties": {
                "asOf": {
                    "type": "string"
                },
                "assets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "liabilities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "equity": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "summary": {
                    "type": "object",
                    "properties": {
                        "totalAssets": {
                            "type": "string"
                        },
                        "totalLiabilities": {
                            "type": "string"
                        },
                        "totalEquity": {
                            "type": "string"
                        },
                        "balanced": {
                            "type": "boolean"
                        }
                    }
                }
            }
        },
        "dto.CounterpartyRequest": {
            "type": "object",
            "properties": {
                "contraagentID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "vatNumber": {
                    "type": "string"
                },
                "eik": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                }
            }
        },
        "dto.DocumentNumberResponse": {
            "type": "object",
            "properties": {
                "documentType": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                }
            }
        },
        "dto.DocumentUIDResponse": {
            "type": "object",
            "properties": {
                "uid": {
                    "type": "string"
                },
                "parts": {
                    "$ref": "#/definitions/domain.DocumentUIDParts"
                }
            }
        },
        "dto.EntryLineRequest": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                },
                "credit": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "contraagentID": {
                    "type": "string"
                },
                "vatRate": {
                    "type": "string"
                },
                "vatAmount": {
                    "type": "string"
                },
                "taxBase": {
                    "type": "string"
                }
            }
        },
        "dto.GenerateUIDRequest": {
            "type": "object",
            "properties": {
                "documentType": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                }
            }
        },
        "dto.ListAccountsResponse": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountResponse"
                    }
                }
            }
        },
        "dto.ListEntriesResponse": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.JournalEntry"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.ListOpeningBalancesResponse": {
            "type": "object",
            "properties": {
                "contraagents": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Contraagent"
                    }
                }
            }
        },
        "dto.OpeningBalanceResponse": {
            "type": "object",
            "properties": {
                "contraagent": {
                    "$ref": "#/definitions/domain.Contraagent"
                },
                "entry": {
                    "$ref": "#/definitions/domain.PostedEntry"
                }
            }
        },
        "dto.PostEntryRequest": {
            "type": "object",
            "properties": {
                "entryDate": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "currencyCode": {
                    "type": "string"
                },
                "exchangeRate": {
                    "type": "string"
                },
                "reference": {
                    "type": "string"
                },
                "journalType": {
                    "type": "string"
                },
                "transactionType": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.EntryLineRequest"
                    }
                }
            }
        },
        "dto.PostSourceRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                }
            }
        },
        "dto.ProfitAndLossResponse": {
            "type": "object",
            "properties": {
                "fromDate": {
                    "type": "string"
                },
                "toDate": {
                    "type": "string"
                },
                "revenue": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "expenses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "summary": {
                    "type": "object",
                    "properties": {
                        "totalRevenue": {
                            "type": "string"
                        },
                        "totalExpenses": {
                            "type": "string"
                        },
                        "netProfit": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "dto.PurchaseDocumentRequest": {
            "type": "object",
            "properties": {
                "documentID": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "typeCode": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "documentDate": {
                    "type": "string"
                },
                "taxEventDate": {
                    "type": "string"
                },
                "counterparty": {
                    "$ref": "#/definitions/dto.CounterpartyRequest"
                },
                "taxableBase": {
                    "type": "string"
                },
                "vatRate": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "isService": {
                    "type": "boolean"
                },
                "isTriangular": {
                    "type": "boolean"
                },
                "reverseCharge": {
                    "type": "boolean"
                },
                "creditType": {
                    "type": "string"
                },
                "deductibleFraction": {
                    "type": "string"
                },
                "operationLabel": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "dto.ResetSequenceRequest": {
            "type": "object",
            "properties": {
                "nextNumber": {
                    "type": "integer"
                }
            }
        },
        "dto.SalesDocumentRequest": {
            "type": "object",
            "properties": {
                "documentID": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "typeCode": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "documentDate": {
                    "type": "string"
                },
                "taxEventDate": {
                    "type": "string"
                },
                "counterparty": {
                    "$ref": "#/definitions/dto.CounterpartyRequest"
                },
                "taxableBase": {
                    "type": "string"
                },
                "vatRate": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "isService": {
                    "type": "boolean"
                },
                "isTriangular": {
                    "type": "boolean"
                },
                "isExempt": {
                    "type": "boolean"
                },
                "isExport": {
                    "type": "boolean"
                },
                "specialZero": {
                    "type": "boolean"
                },
                "reverseCharge": {
                    "type": "boolean"
                },
                "operationLabel": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "dto.SetOpeningBalanceRequest": {
            "type": "object",
            "properties": {
                "debit": {
                    "type": "string"
                },
                "credit": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "dto.TrialBalanceResponse": {
            "type": "object",
            "properties": {
                "fromDate": {
                    "type": "string"
                },
                "toDate": {
                    "type": "string"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TrialBalanceRowResponse"
                    }
                },
                "totals": {
                    "type": "object",
                    "properties": {
                        "periodDebit": {
                            "type": "string"
                        },
                        "periodCredit": {
                            "type": "string"
                        },
                        "closingDebit": {
                            "type": "string"
                        },
                        "closingCredit": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "dto.TrialBalanceRowResponse": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "accountName": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "openingDebit": {
                    "type": "string"
                },
                "openingCredit": {
                    "type": "string"
                },
                "periodDebit": {
                    "type": "string"
                },
                "periodCredit": {
                    "type": "string"
                },
                "closingDebit": {
                    "type": "string"
                },
                "closingCredit": {
                    "type": "string"
                }
            }
        },
        "dto.VatRegistersResponse": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "sales": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.VatSalesRegister"
                    }
                },
                "purchases": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.VatPurchaseRegister"
                    }
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "OrganizationID": {
            "description": "UUID of the organization every request is scoped to.",
            "type": "apiKey",
            "name": "X-Organization-ID",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "ERP Accounting Core API",
	Description:      "Double-entry journal, VAT registers and statutory exports for Bulgarian organizations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
