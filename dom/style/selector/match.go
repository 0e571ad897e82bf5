package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"

	"github.com/npillmayer/stylecomp/dom"
)

// Context is what selector matching reads besides the selector: the element
// tree and the dynamic element states. States may be nil.
//
// A Context may be shared between goroutines. Neither Tree nor States may
// change once matching with the context has started.
type Context struct {
	Tree   *dom.Tree
	States dom.StateMap

	once    sync.Once
	focused map[dom.ElementID]struct{} // focused elements and their ancestors
}

// Matches is a predicate: does the selector match element e?
// Pseudo-elements do not restrict matching.
func (s *Selector) Matches(e dom.ElementID, ctx *Context) bool {
	return s.Compound.Matches(e, ctx)
}

// Matches is a predicate: do all parts of the compound match element e?
func (c *Compound) Matches(e dom.ElementID, ctx *Context) bool {
	el := ctx.Tree.Element(e)
	if el == nil {
		return false
	}
	for i := range c.Parts {
		if !c.Parts[i].matches(el, ctx) {
			return false
		}
	}
	return true
}

func (sel *Simple) matches(el *dom.ElementContext, ctx *Context) bool {
	switch sel.Kind {
	case KindUniversal:
		return true
	case KindType:
		return el.Tag == sel.Name
	case KindID:
		return el.IDAttr != "" && strings.EqualFold(el.IDAttr, sel.Name)
	case KindClass:
		return el.HasClass(sel.Name)
	case KindAttribute:
		return sel.matchAttribute(el)
	case KindPseudoClass:
		return sel.matchPseudo(el, ctx)
	}
	return false
}

// --- Attributes ------------------------------------------------------------

func (sel *Simple) matchAttribute(el *dom.ElementContext) bool {
	v, ok := el.Attr(sel.Name)
	if !ok {
		return false
	}
	want := sel.Value
	if sel.Fold {
		v, want = strings.ToLower(v), strings.ToLower(want)
	}
	switch sel.Op {
	case AttrExists:
		return true
	case AttrEquals:
		return v == want
	case AttrIncludes:
		return matchInclude(want, v)
	case AttrDash:
		return v == want || strings.HasPrefix(v, want+"-")
	case AttrPrefix:
		return want != "" && strings.HasPrefix(v, want)
	case AttrSuffix:
		return want != "" && strings.HasSuffix(v, want)
	case AttrSubstring:
		return want != "" && strings.Contains(v, want)
	}
	return false
}

// matchInclude returns true if s is a whitespace-separated word in list.
// Empty words or words containing white space never match.
func matchInclude(s, list string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n\f") {
		return false
	}
	for _, w := range strings.Fields(list) {
		if w == s {
			return true
		}
	}
	return false
}

// --- Pseudo-classes --------------------------------------------------------

func (sel *Simple) matchPseudo(el *dom.ElementContext, ctx *Context) bool {
	states := ctx.States.Get(el.ID)
	switch sel.Pseudo {
	case PseudoRoot, PseudoScope:
		return el.Parent == dom.NoElement
	case PseudoEmpty:
		return len(ctx.Tree.Children(el.ID)) == 0
	case PseudoFirstChild:
		return ctx.Tree.Position(el.ID).Index == 1
	case PseudoLastChild:
		pos := ctx.Tree.Position(el.ID)
		return pos.Index == pos.Count
	case PseudoOnlyChild:
		return ctx.Tree.Position(el.ID).Count == 1
	case PseudoFirstOfType:
		return ctx.Tree.Position(el.ID).TypeIndex == 1
	case PseudoLastOfType:
		pos := ctx.Tree.Position(el.ID)
		return pos.TypeIndex == pos.TypeCount
	case PseudoOnlyOfType:
		return ctx.Tree.Position(el.ID).TypeCount == 1
	case PseudoNthChild:
		return sel.Nth.Matches(ctx.Tree.Position(el.ID).Index)
	case PseudoNthLastChild:
		pos := ctx.Tree.Position(el.ID)
		return sel.Nth.Matches(pos.Count - pos.Index + 1)
	case PseudoNthOfType:
		return sel.Nth.Matches(ctx.Tree.Position(el.ID).TypeIndex)
	case PseudoNthLastOfType:
		pos := ctx.Tree.Position(el.ID)
		return sel.Nth.Matches(pos.TypeCount - pos.TypeIndex + 1)
	case PseudoNot:
		for _, arg := range sel.Args {
			if arg.Matches(el.ID, ctx) {
				return false
			}
		}
		return true
	case PseudoIs, PseudoWhere:
		for _, arg := range sel.Args {
			if arg.Matches(el.ID, ctx) {
				return true
			}
		}
		return false
	case PseudoHover:
		return states.Has(dom.Hover)
	case PseudoActive:
		return states.Has(dom.Active)
	case PseudoFocus:
		return states.Has(dom.Focus)
	case PseudoFocusVisible:
		return states.Has(dom.FocusVisible)
	case PseudoFocusWithin:
		return focusWithin(el.ID, ctx)
	case PseudoLink:
		return isLink(el) && !states.Has(dom.Visited)
	case PseudoVisited:
		return isLink(el) && states.Has(dom.Visited)
	case PseudoAnyLink:
		return isLink(el)
	case PseudoChecked:
		return states.Has(dom.Checked)
	case PseudoDisabled:
		return states.Has(dom.Disabled)
	case PseudoEnabled:
		return !states.Has(dom.Disabled)
	case PseudoRequired:
		return states.Has(dom.Required)
	case PseudoOptional:
		return !states.Has(dom.Required)
	case PseudoInvalid:
		return states.Has(dom.Invalid)
	case PseudoValid:
		return !states.Has(dom.Invalid)
	case PseudoReadWrite:
		return isEditable(el) && !states.Has(dom.ReadOnly) && !states.Has(dom.Disabled)
	case PseudoReadOnly:
		return !isEditable(el) || states.Has(dom.ReadOnly) || states.Has(dom.Disabled)
	case PseudoPlaceholderShown:
		return states.Has(dom.PlaceholderShown)
	case PseudoIndeterminate:
		return states.Has(dom.Indeterminate)
	case PseudoDefault:
		return el.HasAttr("checked") || el.HasAttr("selected")
	case PseudoTarget:
		return states.Has(dom.Target)
	case PseudoLang:
		lang, ok := inheritedAttr(el, ctx, "lang")
		if !ok {
			return false
		}
		return strings.EqualFold(lang, sel.Value) ||
			len(lang) > len(sel.Value) && strings.EqualFold(lang[:len(sel.Value)+1], sel.Value+"-")
	case PseudoDir:
		dir, _ := inheritedAttr(el, ctx, "dir")
		if strings.EqualFold(dir, "rtl") {
			return sel.Value == "rtl"
		}
		return sel.Value == "ltr"
	}
	return false
}

// isLink is a predicate: is el a hyperlink source anchor?
func isLink(el *dom.ElementContext) bool {
	switch el.Tag {
	case "a", "area", "link":
		return el.HasAttr("href")
	}
	return false
}

// isEditable is a predicate: may the user alter the content of el?
func isEditable(el *dom.ElementContext) bool {
	switch el.Tag {
	case "input", "textarea":
		return !el.HasAttr("readonly")
	}
	v, ok := el.Attr("contenteditable")
	return ok && !strings.EqualFold(v, "false")
}

// focusWithin is a predicate: is e or one of its descendants focused?
func focusWithin(e dom.ElementID, ctx *Context) bool {
	ctx.once.Do(ctx.collectFocused)
	_, ok := ctx.focused[e]
	return ok
}

// collectFocused marks every focused element and all of its ancestors.
// Walking up stops at the first element already marked, so each element
// is visited at most once.
func (ctx *Context) collectFocused() {
	ctx.focused = make(map[dom.ElementID]struct{})
	if ctx.Tree == nil || ctx.Tree.Validate() != nil {
		return
	}
	for _, id := range ctx.States.With(dom.Focus) {
		for e := id; e != dom.NoElement; e = ctx.Tree.Parent(e) {
			if _, done := ctx.focused[e]; done {
				break
			}
			ctx.focused[e] = struct{}{}
		}
	}
}

// inheritedAttr finds the value of an attribute on el or its nearest
// ancestor carrying it.
func inheritedAttr(el *dom.ElementContext, ctx *Context, name string) (string, bool) {
	for steps := ctx.Tree.Len(); el != nil && steps >= 0; steps-- {
		if v, ok := el.Attr(name); ok {
			return v, true
		}
		el = ctx.Tree.Element(el.Parent)
	}
	return "", false
}
