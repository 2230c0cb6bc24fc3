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
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// LibraryQuery is the builder for querying Library entities.
type LibraryQuery struct {
	config
	ctx               *QueryContext
	order             []library.OrderOption
	inters            []Interceptor
	predicates        []predicate.Library
	withEvents        *EventQuery
	withUpstreamVulns *UpstreamVulnQuery
	withDependencies  *ProjectDependencyQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LibraryQuery builder.
func (_q *LibraryQuery) Where(ps ...predicate.Library) *LibraryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LibraryQuery) Limit(limit int) *LibraryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LibraryQuery) Offset(offset int) *LibraryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LibraryQuery) Unique(unique bool) *LibraryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LibraryQuery) Order(o ...library.OrderOption) *LibraryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEvents chains the current query on the "events" edge.
func (_q *LibraryQuery) QueryEvents() *EventQuery {
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
			sqlgraph.From(library.Table, library.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, library.EventsTable, library.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUpstreamVulns chains the current query on the "upstream_vulns" edge.
func (_q *LibraryQuery) QueryUpstreamVulns() *UpstreamVulnQuery {
	query := (&UpstreamVulnClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(library.Table, library.FieldID, selector),
			sqlgraph.To(upstreamvuln.Table, upstreamvuln.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, library.UpstreamVulnsTable, library.UpstreamVulnsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDependencies chains the current query on the "dependencies" edge.
func (_q *LibraryQuery) QueryDependencies() *ProjectDependencyQuery {
	query := (&ProjectDependencyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(library.Table, library.FieldID, selector),
			sqlgraph.To(projectdependency.Table, projectdependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, library.DependenciesTable, library.DependenciesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Library entity from the query.
// Returns a *NotFoundError when no Library was found.
func (_q *LibraryQuery) First(ctx context.Context) (*Library, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{library.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LibraryQuery) FirstX(ctx context.Context) *Library {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Library ID from the query.
// Returns a *NotFoundError when no Library ID was found.
func (_q *LibraryQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{library.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LibraryQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Library entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Library entity is found.
// Returns a *NotFoundError when no Library entities are found.
func (_q *LibraryQuery) Only(ctx context.Context) (*Library, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{library.Label}
	default:
		return nil, &NotSingularError{library.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LibraryQuery) OnlyX(ctx context.Context) *Library {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Library ID in the query.
// Returns a *NotSingularError when more than one Library ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LibraryQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{library.Label}
	default:
		err = &NotSingularError{library.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LibraryQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Libraries.
func (_q *LibraryQuery) All(ctx context.Context) ([]*Library, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Library, *LibraryQuery]()
	return withInterceptors[[]*Library](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LibraryQuery) AllX(ctx context.Context) []*Library {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Library IDs.
func (_q *LibraryQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(library.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LibraryQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LibraryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LibraryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LibraryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LibraryQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LibraryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LibraryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LibraryQuery) Clone() *LibraryQuery {
	if _q == nil {
		return nil
	}
	return &LibraryQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]library.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Library{}, _q.predicates...),
		withEvents:        _q.withEvents.Clone(),
		withUpstreamVulns: _q.withUpstreamVulns.Clone(),
		withDependencies:  _q.withDependencies.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LibraryQuery) WithEvents(opts ...func(*EventQuery)) *LibraryQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithUpstreamVulns tells the query-builder to eager-load the nodes that are connected to
// the "upstream_vulns" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LibraryQuery) WithUpstreamVulns(opts ...func(*UpstreamVulnQuery)) *LibraryQuery {
	query := (&UpstreamVulnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUpstreamVulns = query
	return _q
}

// WithDependencies tells the query-builder to eager-load the nodes that are connected to
// the "dependencies" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LibraryQuery) WithDependencies(opts ...func(*ProjectDependencyQuery)) *LibraryQuery {
	query := (&ProjectDependencyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDependencies = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Library.Query().
//		GroupBy(library.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LibraryQuery) GroupBy(field string, fields ...string) *LibraryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LibraryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = library.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Library.Query().
//		Select(library.FieldName).
//		Scan(ctx, &v)
func (_q *LibraryQuery) Select(fields ...string) *LibrarySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LibrarySelect{LibraryQuery: _q}
	sbuild.label = library.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LibrarySelect configured with the given aggregations.
func (_q *LibraryQuery) Aggregate(fns ...AggregateFunc) *LibrarySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LibraryQuery) prepareQuery(ctx context.Context) error {
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
		if !library.ValidColumn(f) {
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

func (_q *LibraryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Library, error) {
	var (
		nodes       = []*Library{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withEvents != nil,
			_q.withUpstreamVulns != nil,
			_q.withDependencies != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Library).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Library{config: _q.config}
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
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Library) { n.Edges.Events = []*Event{} },
			func(n *Library, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUpstreamVulns; query != nil {
		if err := _q.loadUpstreamVulns(ctx, query, nodes,
			func(n *Library) { n.Edges.UpstreamVulns = []*UpstreamVuln{} },
			func(n *Library, e *UpstreamVuln) { n.Edges.UpstreamVulns = append(n.Edges.UpstreamVulns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDependencies; query != nil {
		if err := _q.loadDependencies(ctx, query, nodes,
			func(n *Library) { n.Edges.Dependencies = []*ProjectDependency{} },
			func(n *Library, e *ProjectDependency) { n.Edges.Dependencies = append(n.Edges.Dependencies, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LibraryQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*Library, init func(*Library), assign func(*Library, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Library)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldLibraryID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(library.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LibraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "library_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LibraryQuery) loadUpstreamVulns(ctx context.Context, query *UpstreamVulnQuery, nodes []*Library, init func(*Library), assign func(*Library, *UpstreamVuln)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Library)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(upstreamvuln.FieldLibraryID)
	}
	query.Where(predicate.UpstreamVuln(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(library.UpstreamVulnsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LibraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "library_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LibraryQuery) loadDependencies(ctx context.Context, query *ProjectDependencyQuery, nodes []*Library, init func(*Library), assign func(*Library, *ProjectDependency)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Library)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(projectdependency.FieldLibraryID)
	}
	query.Where(predicate.ProjectDependency(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(library.DependenciesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LibraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "library_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LibraryQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *LibraryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(library.Table, library.Columns, sqlgraph.NewFieldSpec(library.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, library.FieldID)
		for i := range fields {
			if fields[i] != library.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *LibraryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(library.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = library.Columns
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
func (_q *LibraryQuery) ForUpdate(opts ...sql.LockOption) *LibraryQuery {
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
func (_q *LibraryQuery) ForShare(opts ...sql.LockOption) *LibraryQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// LibraryGroupBy is the group-by builder for Library entities.
type LibraryGroupBy struct {
	selector
	build *LibraryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LibraryGroupBy) Aggregate(fns ...AggregateFunc) *LibraryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LibraryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LibraryQuery, *LibraryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LibraryGroupBy) sqlScan(ctx context.Context, root *LibraryQuery, v any) error {
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

// LibrarySelect is the builder for selecting fields of Library entities.
type LibrarySelect struct {
	*LibraryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LibrarySelect) Aggregate(fns ...AggregateFunc) *LibrarySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LibrarySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LibraryQuery, *LibrarySelect](ctx, _s.LibraryQuery, _s, _s.inters, v)
}

func (_s *LibrarySelect) sqlScan(ctx context.Context, root *LibraryQuery, v any) error {
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
