// Package core holds the HTTP response envelope shared by the access API.
//
// Every body is a JSONResponse. Successful responses carry Data and optional
// Meta; failures carry an ErrorDetail whose code is stable and machine
// readable:
//
//	{"data": {...}, "meta": {"total": 3}}
//	{"code": "forbidden", "error": {"code": "forbidden", "message": "Forbidden"}}
//
// JSONError maps HTTPError and ValidationError values to their status codes;
// anything else becomes a 500 with a generic message.
package core
