// Package authtoken carries rbac principals in HS256 JSON Web Tokens.
//
// An Issuer signs a principal into a token; a Verifier checks signature,
// issuer, audience and expiry, then decodes the claims back into a
// *rbac.Principal against a catalog:
//
//	issuer, _ := authtoken.NewIssuer(cfg)
//	token, _ := issuer.Issue(&rbac.Principal{ID: "u-1", Role: rbac.RoleCashier}, 0)
//
//	verifier, _ := authtoken.NewVerifier(cfg, catalog, log)
//	principal, err := verifier.Verify(token)
//
// Explicit permissions travel as an OAuth-style space-separated "scope"
// claim. Unknown scope entries and unknown secondary roles are dropped when
// decoding. An unknown primary role is kept so the evaluator denies it.
//
// Middleware reads "Authorization: Bearer <token>" and stores the principal
// with rbac.WithPrincipal. Requests without a header pass through
// unauthenticated, so rbac middleware answers 401 further down the chain.
package authtoken
