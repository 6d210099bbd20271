// Package headerutil builds the informational response headers the API
// attaches to entity mutations and failures. All functions are pure: they
// format strings into a fresh http.Header and never touch the response.
package headerutil

import "net/http"

const (
	appName = "bankapi"

	// AlertHeader carries a user-facing notification code for a successful operation.
	AlertHeader = "X-bankapi-alert"
	// ParamsHeader carries the parameter (usually the entity id) for the notification.
	ParamsHeader = "X-bankapi-params"
	// ErrorHeader carries a translatable error code for a failed operation.
	ErrorHeader = "X-bankapi-error"
)

// CreateAlert builds the alert/params header pair for an arbitrary message.
func CreateAlert(message, param string) http.Header {
	h := http.Header{}
	h.Set(AlertHeader, message)
	h.Set(ParamsHeader, param)
	return h
}

// CreateEntityCreationAlert builds the headers announcing that an entity was created.
func CreateEntityCreationAlert(entityName, param string) http.Header {
	return CreateAlert(appName+"."+entityName+".created", param)
}

// CreateEntityUpdateAlert builds the headers announcing that an entity was updated.
func CreateEntityUpdateAlert(entityName, param string) http.Header {
	return CreateAlert(appName+"."+entityName+".updated", param)
}

// CreateEntityDeletionAlert builds the headers announcing that an entity was deleted.
func CreateEntityDeletionAlert(entityName, param string) http.Header {
	return CreateAlert(appName+"."+entityName+".deleted", param)
}

// CreateFailureAlert builds the error/params header pair for a failed
// operation. The errorKey is prefixed with "error." so clients can resolve it
// as a translation key. defaultMessage is accepted for signature compatibility
// with the alert consumers but does not influence the headers.
func CreateFailureAlert(entityName, errorKey, defaultMessage string) http.Header {
	_ = defaultMessage
	h := http.Header{}
	h.Set(ErrorHeader, "error."+errorKey)
	h.Set(ParamsHeader, entityName)
	return h
}
