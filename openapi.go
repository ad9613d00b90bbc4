package main

// openapiYAML is served at /api/openapi.yaml and rendered by the swagger UI
// mounted at /swagger.
var openapiYAML = []byte(`openapi: 3.0.3
info:
  title: FieldVision API
  description: >
    Field monitoring API: draw field polygons, run satellite vegetation
    analyses and read zone health, irrigation priority and recommendations.
  version: "1.0"
paths:
  /api/auth/register:
    post:
      summary: Register a new account
      responses:
        "201": { description: created }
        "409": { description: email already registered }
  /api/auth/login:
    post:
      summary: Exchange credentials for a JWT
      responses:
        "200": { description: token }
        "401": { description: invalid credentials }
  /api/me:
    get:
      summary: Current user profile
      security: [{ bearerAuth: [] }]
      responses:
        "200": { description: user }
  /api/fields:
    get:
      summary: List the current user's fields
      security: [{ bearerAuth: [] }]
      responses:
        "200": { description: fields }
    post:
      summary: Create a field from a GeoJSON polygon
      security: [{ bearerAuth: [] }]
      responses:
        "201": { description: field }
  /api/fields/{id}:
    get:
      summary: Get a field
      security: [{ bearerAuth: [] }]
      responses:
        "200": { description: field }
    put:
      summary: Update name, geometry or metadata
      security: [{ bearerAuth: [] }]
      responses:
        "200": { description: field }
    delete:
      summary: Delete a field and its analysis history
      security: [{ bearerAuth: [] }]
      responses:
        "200": { description: ok }
  /api/fields/{id}/analyze:
    post:
      summary: Run a vegetation analysis now
      description: >
        Fetches the per-zone vegetation index snapshot and current weather,
        classifies zone health, estimates irrigation priority and returns
        the ranked recommendation list. Weather being unavailable degrades
        the result (no irrigation record) instead of failing.
      security: [{ bearerAuth: [] }]
      responses:
        "201": { description: analysis }
        "502": { description: imagery processor unavailable }
  /api/fields/{id}/analyses:
    get:
      summary: Analysis history, newest first
      security: [{ bearerAuth: [] }]
      responses:
        "200": { description: analyses }
  /api/fields/{id}/analyses/latest:
    get:
      summary: Most recent analysis
      security: [{ bearerAuth: [] }]
      responses:
        "200": { description: analysis }
        "404": { description: no analyses for field }
  /api/fields/{id}/problem-zones:
    get:
      summary: Zones below the problem threshold, worst first
      security: [{ bearerAuth: [] }]
      parameters:
        - name: threshold
          in: query
          schema: { type: number, default: 0.3 }
      responses:
        "200": { description: ranked problem zones }
components:
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
      bearerFormat: JWT
`)
