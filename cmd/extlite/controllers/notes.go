package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	kdb "github.com/opst/extlite/pkg/db"
	"github.com/opst/extlite/pkg/mvc"
	weberr "github.com/opst/extlite/pkg/web/errors"
)

type Note struct {
	Id    int64  `sql:"id" param:"id"`
	Title string `sql:"title" param:"title"`
	Body  string `sql:"body" param:"body"`
	Done  bool   `sql:"done" param:"done"`
}

func (Note) TableName() string { return "notes" }
func (Note) KeyColumn() string { return "id" }

// Notes is a controller of notes.
//
// Templates receive "notes" ([]Note) on index,
// and "note" (Note) on the others. When a form is rejected, "error" tells why.
type Notes struct {
	dao kdb.DAO[Note]
}

var _ mvc.Controller = &Notes{}

func NewNotes(dao kdb.DAO[Note]) *Notes {
	return &Notes{dao: dao}
}

func (*Notes) Name() string {
	return "notes"
}

func (n *Notes) Index(c *mvc.Context) error {
	notes, err := n.dao.Find(c.Request().Context())
	if err != nil {
		return weberr.FromDB(err)
	}
	c.Set("notes", notes)
	c.Forward()
	return nil
}

func (*Notes) Add(c *mvc.Context) error {
	c.Set("note", Note{})
	c.Forward()
	return nil
}

func (n *Notes) Create(c *mvc.Context) error {
	note := Note{}
	if err := c.Bind(&note); err != nil {
		return weberr.BadRequest("check the form", err)
	}
	note.Id = 0
	note.Title = strings.TrimSpace(note.Title)

	if reject(c, note, string(mvc.Add)) {
		return nil
	}
	if err := n.dao.Create(c.Request().Context(), &note); err != nil {
		return weberr.FromDB(err)
	}
	return c.Redirect(mvc.Detail, url.Values{"id": {strconv.FormatInt(note.Id, 10)}})
}

func (n *Notes) Edit(c *mvc.Context) error {
	return n.show(c)
}

func (n *Notes) Save(c *mvc.Context) error {
	id, err := noteId(c)
	if err != nil {
		return err
	}
	note := Note{}
	if err := c.Bind(&note); err != nil {
		return weberr.BadRequest("check the form", err)
	}
	note.Id = id
	note.Title = strings.TrimSpace(note.Title)

	if reject(c, note, string(mvc.Edit)) {
		return nil
	}
	if err := n.dao.Update(c.Request().Context(), note); err != nil {
		return weberr.FromDB(err)
	}
	return c.Redirect(mvc.Detail, url.Values{"id": {strconv.FormatInt(id, 10)}})
}

func (n *Notes) Delete(c *mvc.Context) error {
	id, err := noteId(c)
	if err != nil {
		return err
	}
	if err := n.dao.Delete(c.Request().Context(), id); err != nil {
		return weberr.FromDB(err)
	}
	return c.Redirect(mvc.Index, nil)
}

func (n *Notes) Detail(c *mvc.Context) error {
	return n.show(c)
}

// show forwards to the view of the action with the note specified by "id".
func (n *Notes) show(c *mvc.Context) error {
	id, err := noteId(c)
	if err != nil {
		return err
	}
	note, err := n.dao.Get(c.Request().Context(), id)
	if err != nil {
		return weberr.FromDB(err)
	}
	c.Set("note", note)
	c.Forward()
	return nil
}

func noteId(c *mvc.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, weberr.BadRequest(`"id" should be an integer`, err)
	}
	return id, nil
}

// reject forwards back to the form when note is not acceptable.
func reject(c *mvc.Context, note Note, form string) bool {
	if note.Title != "" {
		return false
	}
	c.Set("note", note)
	c.Set("error", "title is required")
	c.SetStatus(http.StatusBadRequest)
	c.ForwardTo(form)
	return true
}
