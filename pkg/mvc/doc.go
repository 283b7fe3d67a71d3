// Package mvc dispatches requests to controllers by convention.
//
// A controller is mounted under its name, and the last segment of the request path
// chooses one of seven actions:
//
//	GET|POST /notes/index   -> Index   (list)
//	GET|POST /notes/add     -> Add     (form to add)
//	GET|POST /notes/create  -> Create  (submit of add)
//	GET|POST /notes/edit    -> Edit    (form to edit)
//	GET|POST /notes/save    -> Save    (submit of edit)
//	GET|POST /notes/delete  -> Delete
//	GET|POST /notes/detail  -> Detail  (single record)
//
// Other segments are answered with DefaultResponse.
//
// After an action, when it has called Context.Forward (or ForwardTo),
// the request is rendered with the template
//
//	<views base>/<controller name>/<target view or action name><ext>
//
// with attributes which the action has Set.
package mvc
