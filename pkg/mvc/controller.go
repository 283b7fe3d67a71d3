package mvc

import "context"

// Controller handles a family of actions for a resource.
//
// Each action either writes a response by itself (Context.Redirect, Context.Echo().JSON, ...),
// or requests a forward to the template with Context.Forward / Context.ForwardTo.
// When it does neither, the response is left empty.
//
// Responses written by actions keep their own Content-Type (application/json for JSON, ...).
// Without one, it is "text/html; charset=UTF-8".
type Controller interface {
	// name of the controller.
	//
	// It is the path segment where the controller is mounted,
	// and the directory name of its templates.
	Name() string

	// list records.
	Index(c *Context) error

	// show a form to add a record. Its form is submitted to Create.
	Add(c *Context) error

	// add a record. In most cases, it redirects to Index on success.
	Create(c *Context) error

	// show a form to edit a record. Its form is submitted to Save.
	Edit(c *Context) error

	// save an edited record. In most cases, it redirects to Detail on success.
	Save(c *Context) error

	// delete a record. In most cases, it redirects to Index on success.
	Delete(c *Context) error

	// show a record.
	Detail(c *Context) error
}

// Initializer is implemented by a Controller which needs set-up.
//
// Init is called once, when the controller is registered to a Router.
type Initializer interface {
	Init(ctx context.Context) error
}

func hookFor(ctrl Controller, action Action) func(*Context) error {
	switch action {
	case Index:
		return ctrl.Index
	case Add:
		return ctrl.Add
	case Create:
		return ctrl.Create
	case Edit:
		return ctrl.Edit
	case Save:
		return ctrl.Save
	case Delete:
		return ctrl.Delete
	case Detail:
		return ctrl.Detail
	}
	return nil
}
