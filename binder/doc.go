// Package binder turns HTTP requests into data trees ready for validation.
//
// Every function produces values the path resolver understands: *pathresolve.Object for
// mappings (insertion ordered), []any for lists, and strings or json.Number for scalars.
//
//   - JSON(r)                 – decodes application/json bodies, keeping key order
//   - Form(r)                 – urlencoded and multipart bodies
//   - Query(r)                – URL query parameters
//   - Path(extractor, names)  – router path parameters, e.g. chi.URLParam
//   - Request(r, sources...)  – reads several sources and merges them
//
// Form and query keys nest on dots or brackets, so "users[0][email]" and
// "users.0.email" both address the same value and match the pattern "users.*.email".
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Post("/teams/{team}/members", func(w http.ResponseWriter, req *http.Request) {
//		data, err := binder.Request(req, binder.Form, binder.Path(chi.URLParam, "team"))
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		// validate data
//	})
//
// # Error Handling
//
// Errors wrap one of the package sentinels: ErrMissingContentType,
// ErrUnsupportedMediaType, ErrInvalidJSON, ErrBodyTooLarge, ErrInvalidForm, ErrInvalidPath
// and ErrConflictingKeys.
package binder
