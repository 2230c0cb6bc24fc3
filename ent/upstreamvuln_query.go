// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// UpstreamVulnQuery is the builder for querying UpstreamVuln entities.
type UpstreamVulnQuery struct {
	config
	ctx             *QueryContext
	order           []upstreamvuln.OrderOption
	inters          []Interceptor
	predicates      []predicate.UpstreamVuln
	withEvent       *EventQuery
	withLibrary     *LibraryQuery
	withClientVulns *ClientVulnQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UpstreamVulnQuery builder.
func (_q *UpstreamVulnQuery) Where(ps ...predicate.UpstreamVuln) *UpstreamVulnQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *UpstreamVulnQuery) Limit(limit int) *UpstreamVulnQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *UpstreamVulnQuery) Offset(offset int) *UpstreamVulnQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *UpstreamVulnQuery) Unique(unique bool) *UpstreamVulnQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *UpstreamVulnQuery) Order(o ...upstreamvuln.OrderOption) *UpstreamVulnQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEvent chains the current query on the "event" edge.
func (_q *UpstreamVulnQuery) QueryEvent() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamvuln.Table, upstreamvuln.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, upstreamvuln.EventTable, upstreamvuln.EventColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLibrary chains the current query on the "library" edge.
func (_q *UpstreamVulnQuery) QueryLibrary() *LibraryQuery {
	query := (&LibraryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamvuln.Table, upstreamvuln.FieldID, selector),
			sqlgraph.To(library.Table, library.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, upstreamvuln.LibraryTable, upstreamvuln.LibraryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryClientVulns chains the current query on the "client_vulns" edge.
func (_q *UpstreamVulnQuery) QueryClientVulns() *ClientVulnQuery {
	query := (&ClientVulnClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamvuln.Table, upstreamvuln.FieldID, selector),
			sqlgraph.To(clientvuln.Table, clientvuln.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upstreamvuln.ClientVulnsTable, upstreamvuln.ClientVulnsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UpstreamVuln entity from the query.
// Returns a *NotFoundError when no UpstreamVuln was found.
func (_q *UpstreamVulnQuery) First(ctx context.Context) (*UpstreamVuln, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{upstreamvuln.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *UpstreamVulnQuery) FirstX(ctx context.Context) *UpstreamVuln {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UpstreamVuln ID from the query.
// Returns a *NotFoundError when no UpstreamVuln ID was found.
func (_q *UpstreamVulnQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{upstreamvuln.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *UpstreamVulnQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UpstreamVuln entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UpstreamVuln entity is found.
// Returns a *NotFoundError when no UpstreamVuln entities are found.
func (_q *UpstreamVulnQuery) Only(ctx context.Context) (*UpstreamVuln, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{upstreamvuln.Label}
	default:
		return nil, &NotSingularError{upstreamvuln.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *UpstreamVulnQuery) OnlyX(ctx context.Context) *UpstreamVuln {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UpstreamVuln ID in the query.
// Returns a *NotSingularError when more than one UpstreamVuln ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *UpstreamVulnQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{upstreamvuln.Label}
	default:
		err = &NotSingularError{upstreamvuln.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *UpstreamVulnQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UpstreamVulns.
func (_q *UpstreamVulnQuery) All(ctx context.Context) ([]*UpstreamVuln, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UpstreamVuln, *UpstreamVulnQuery]()
	return withInterceptors[[]*UpstreamVuln](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *UpstreamVulnQuery) AllX(ctx context.Context) []*UpstreamVuln {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UpstreamVuln IDs.
func (_q *UpstreamVulnQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(upstreamvuln.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *UpstreamVulnQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *UpstreamVulnQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*UpstreamVulnQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *UpstreamVulnQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *UpstreamVulnQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *UpstreamVulnQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UpstreamVulnQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *UpstreamVulnQuery) Clone() *UpstreamVulnQuery {
	if _q == nil {
		return nil
	}
	return &UpstreamVulnQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]upstreamvuln.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.UpstreamVuln{}, _q.predicates...),
		withEvent:       _q.withEvent.Clone(),
		withLibrary:     _q.withLibrary.Clone(),
		withClientVulns: _q.withClientVulns.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEvent tells the query-builder to eager-load the nodes that are connected to
// the "event" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UpstreamVulnQuery) WithEvent(opts ...func(*EventQuery)) *UpstreamVulnQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvent = query
	return _q
}

// WithLibrary tells the query-builder to eager-load the nodes that are connected to
// the "library" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UpstreamVulnQuery) WithLibrary(opts ...func(*LibraryQuery)) *UpstreamVulnQuery {
	query := (&LibraryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLibrary = query
	return _q
}

// WithClientVulns tells the query-builder to eager-load the nodes that are connected to
// the "client_vulns" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UpstreamVulnQuery) WithClientVulns(opts ...func(*ClientVulnQuery)) *UpstreamVulnQuery {
	query := (&ClientVulnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClientVulns = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		EventID string `json:"event_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UpstreamVuln.Query().
//		GroupBy(upstreamvuln.FieldEventID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *UpstreamVulnQuery) GroupBy(field string, fields ...string) *UpstreamVulnGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UpstreamVulnGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = upstreamvuln.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		EventID string `json:"event_id,omitempty"`
//	}
//
//	client.UpstreamVuln.Query().
//		Select(upstreamvuln.FieldEventID).
//		Scan(ctx, &v)
func (_q *UpstreamVulnQuery) Select(fields ...string) *UpstreamVulnSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &UpstreamVulnSelect{UpstreamVulnQuery: _q}
	sbuild.label = upstreamvuln.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UpstreamVulnSelect configured with the given aggregations.
func (_q *UpstreamVulnQuery) Aggregate(fns ...AggregateFunc) *UpstreamVulnSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *UpstreamVulnQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !upstreamvuln.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *UpstreamVulnQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UpstreamVuln, error) {
	var (
		nodes       = []*UpstreamVuln{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withEvent != nil,
			_q.withLibrary != nil,
			_q.withClientVulns != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UpstreamVuln).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UpstreamVuln{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withEvent; query != nil {
		if err := _q.loadEvent(ctx, query, nodes, nil,
			func(n *UpstreamVuln, e *Event) { n.Edges.Event = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLibrary; query != nil {
		if err := _q.loadLibrary(ctx, query, nodes, nil,
			func(n *UpstreamVuln, e *Library) { n.Edges.Library = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withClientVulns; query != nil {
		if err := _q.loadClientVulns(ctx, query, nodes,
			func(n *UpstreamVuln) { n.Edges.ClientVulns = []*ClientVuln{} },
			func(n *UpstreamVuln, e *ClientVuln) { n.Edges.ClientVulns = append(n.Edges.ClientVulns, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *UpstreamVulnQuery) loadEvent(ctx context.Context, query *EventQuery, nodes []*UpstreamVuln, init func(*UpstreamVuln), assign func(*UpstreamVuln, *Event)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*UpstreamVuln)
	for i := range nodes {
		fk := nodes[i].EventID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(event.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "event_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *UpstreamVulnQuery) loadLibrary(ctx context.Context, query *LibraryQuery, nodes []*UpstreamVuln, init func(*UpstreamVuln), assign func(*UpstreamVuln, *Library)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*UpstreamVuln)
	for i := range nodes {
		fk := nodes[i].LibraryID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(library.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "library_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *UpstreamVulnQuery) loadClientVulns(ctx context.Context, query *ClientVulnQuery, nodes []*UpstreamVuln, init func(*UpstreamVuln), assign func(*UpstreamVuln, *ClientVuln)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*UpstreamVuln)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(clientvuln.FieldUpstreamVulnID)
	}
	query.Where(predicate.ClientVuln(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(upstreamvuln.ClientVulnsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UpstreamVulnID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "upstream_vuln_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *UpstreamVulnQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *UpstreamVulnQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(upstreamvuln.Table, upstreamvuln.Columns, sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upstreamvuln.FieldID)
		for i := range fields {
			if fields[i] != upstreamvuln.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withEvent != nil {
			_spec.Node.AddColumnOnce(upstreamvuln.FieldEventID)
		}
		if _q.withLibrary != nil {
			_spec.Node.AddColumnOnce(upstreamvuln.FieldLibraryID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *UpstreamVulnQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(upstreamvuln.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = upstreamvuln.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *UpstreamVulnQuery) ForUpdate(opts ...sql.LockOption) *UpstreamVulnQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *UpstreamVulnQuery) ForShare(opts ...sql.LockOption) *UpstreamVulnQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// UpstreamVulnGroupBy is the group-by builder for UpstreamVuln entities.
type UpstreamVulnGroupBy struct {
	selector
	build *UpstreamVulnQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *UpstreamVulnGroupBy) Aggregate(fns ...AggregateFunc) *UpstreamVulnGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *UpstreamVulnGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UpstreamVulnQuery, *UpstreamVulnGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *UpstreamVulnGroupBy) sqlScan(ctx context.Context, root *UpstreamVulnQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UpstreamVulnSelect is the builder for selecting fields of UpstreamVuln entities.
type UpstreamVulnSelect struct {
	*UpstreamVulnQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *UpstreamVulnSelect) Aggregate(fns ...AggregateFunc) *UpstreamVulnSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *UpstreamVulnSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UpstreamVulnQuery, *UpstreamVulnSelect](ctx, _s.UpstreamVulnQuery, _s, _s.inters, v)
}

func (_s *UpstreamVulnSelect) sqlScan(ctx context.Context, root *UpstreamVulnQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
