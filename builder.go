package fragql

import (
	"strconv"

	"github.com/zoobzio/fragql/internal/types"
	"go.uber.org/zap"
)

// Builder assembles one SQL statement on a root fragment.
//
// A statement is started with Select, SelectDistinct, Update, Insert,
// InsertValues, InsertSelect or Delete; starting again replaces the root.
// Every other method adds to a named clause group and may be called in any
// order and any number of times. Expression and Render put the clauses in
// canonical order before returning.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	root    *Fragment
	log     *zap.Logger
	op      Operation
	borders [2]string
}

// New creates a builder with an empty root, so clause methods may be used
// before a statement is started.
func New(opts ...Option) *Builder {
	b := &Builder{
		root:    types.NewFragment(""),
		log:     zap.NewNop(),
		borders: defaultBorders,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Select starts a new SELECT statement.
func Select(fields ...Field) *Builder {
	return New().Select(fields...)
}

// SelectDistinct starts a new SELECT DISTINCT statement.
func SelectDistinct(fields ...Field) *Builder {
	return New().SelectDistinct(fields...)
}

// Update starts a new UPDATE statement.
func Update(table string, sets ...Assignment) *Builder {
	return New().Update(table, sets...)
}

// Insert starts a new INSERT statement with literal value tuples.
func Insert(into string, fields []string, rows ...[]Value) *Builder {
	return New().Insert(into, fields, rows...)
}

// Delete starts a new DELETE statement.
func Delete() *Builder {
	return New().Delete()
}

// Operation returns the kind of the current statement.
func (b *Builder) Operation() Operation {
	return b.op
}

func (b *Builder) start(op Operation, root *Fragment) *Builder {
	if b.op != OpNone {
		b.log.Debug("statement replaced",
			zap.String("previous", string(b.op)),
			zap.String("operation", string(op)),
		)
	}
	b.root = root
	b.op = op
	b.log.Debug("statement started", zap.String("operation", string(op)))
	return b
}

// Select starts a new SELECT statement with the given fields.
func (b *Builder) Select(fields ...Field) *Builder {
	return b.selectFields("SELECT", fields)
}

// SelectDistinct starts a new SELECT DISTINCT statement with the given fields.
func (b *Builder) SelectDistinct(fields ...Field) *Builder {
	return b.selectFields("SELECT DISTINCT", fields)
}

func (b *Builder) selectFields(keyword string, fields []Field) *Builder {
	items := make([]*Fragment, len(fields))
	for i, f := range fields {
		items[i] = f.fragment()
	}
	root := types.NewFragment(keyword).
		WithInnerPrefix(" ").
		AddChildren(groupSelectFields, items...).
		SetGroupFormat(groupSelectFields,
			types.Separator(", "),
			types.GroupPostfix(" "),
			types.SuppressName(true),
		)
	return b.start(OpSelect, root)
}

// Update starts a new UPDATE statement on table.
func (b *Builder) Update(table string, sets ...Assignment) *Builder {
	root := types.NewFragment("UPDATE").
		WithInnerPrefix(" ").
		AddChildren(groupTable, types.NewFragment(table)).
		SetGroupFormat(groupTable, types.SuppressName(true))
	b.start(OpUpdate, root)
	return b.Set(sets...)
}

// Set adds assignments to the SET clause.
func (b *Builder) Set(sets ...Assignment) *Builder {
	items := make([]*Fragment, len(sets))
	for i, s := range sets {
		items[i] = Equal(s.Field, s.Value)
	}
	b.root.
		AddChildren(groupSet, items...).
		SetGroupFormat(groupSet,
			types.Separator(", "),
			types.GroupPrefix(" "),
			types.NameSeparator(" "),
		)
	return b
}

// Insert starts a new INSERT statement whose VALUES clause lists the given
// tuples: INSERT INTO t(a, b) VALUES (1, 2), (3, 4).
func (b *Builder) Insert(into string, fields []string, rows ...[]Value) *Builder {
	b.insertInto(into, fields)
	tuples := make([]*Fragment, len(rows))
	for i, row := range rows {
		tuples[i] = tuple(row)
	}
	b.root.
		AddChildren(groupValues, tuples...).
		SetGroupFormat(groupValues,
			types.Separator(", "),
			types.GroupPrefix(" "),
			types.NameSeparator(" "),
		)
	return b
}

// InsertValues starts a new INSERT statement with a prebuilt fragment placed
// after the VALUES keyword.
func (b *Builder) InsertValues(into string, fields []string, values *Fragment) *Builder {
	b.insertInto(into, fields)
	b.root.
		AddChildren(groupValues, values).
		SetGroupFormat(groupValues, types.GroupPrefix(" "), types.NameSeparator(" "))
	return b
}

// InsertSelect starts a new INSERT statement fed by a query, without the
// VALUES keyword: INSERT INTO t(a) SELECT a FROM s.
func (b *Builder) InsertSelect(into string, fields []string, query *Fragment) *Builder {
	b.insertInto(into, fields)
	b.root.
		AddChildren(groupValues, query).
		SetGroupFormat(groupValues, types.GroupPrefix(" "), types.SuppressName(true))
	return b
}

func (b *Builder) insertInto(into string, fields []string) {
	root := types.NewFragment("INSERT").
		WithInnerPrefix(" ").
		AddChildren(groupInto, types.NewFragment(into)).
		SetGroupFormat(groupInto, types.NameSeparator(" "))
	if len(fields) > 0 {
		root.
			AddChildren(groupFields, tuple(types.ValuesOf(fields...))).
			SetGroupFormat(groupFields, types.SuppressName(true))
	}
	b.start(OpInsert, root)
}

// Delete starts a new DELETE statement. Use From to name the table.
func (b *Builder) Delete() *Builder {
	return b.start(OpDelete, types.NewFragment("DELETE").WithInnerPrefix(" "))
}

// From adds tables to the FROM clause.
func (b *Builder) From(tables ...Table) *Builder {
	items := make([]*Fragment, len(tables))
	for i, t := range tables {
		items[i] = t.fragment()
	}
	b.root.
		AddChildren(groupFrom, items...).
		SetGroupFormat(groupFrom, types.Separator(", "), types.NameSeparator(" "))
	return b
}

// Where adds conditions joined with AND.
func (b *Builder) Where(conds ...Cond) *Builder {
	return b.conditions(groupWhere, conds,
		types.Separator(" AND "),
		types.GroupPrefix(" "),
		types.NameSeparator(" "),
	)
}

// OrWhere adds conditions rendered as " OR c1 OR c2".
func (b *Builder) OrWhere(conds ...Cond) *Builder {
	return b.conditions(groupOrWhere, conds,
		types.Separator(" OR "),
		types.GroupPrefix(" "),
		types.NameSeparator(" "),
	)
}

// Having adds HAVING conditions joined with AND.
func (b *Builder) Having(conds ...Cond) *Builder {
	return b.conditions(groupHaving, conds,
		types.Separator(" AND "),
		types.GroupPrefix(" "),
		types.NameSeparator(" "),
	)
}

// OrHaving adds HAVING conditions rendered as " OR c1 OR c2".
func (b *Builder) OrHaving(conds ...Cond) *Builder {
	return b.conditions(groupOrHaving, conds,
		types.Separator(" OR "),
		types.GroupPrefix(" OR"),
		types.NameSeparator(" "),
		types.SuppressName(true),
	)
}

func (b *Builder) conditions(group string, conds []Cond, format ...types.FormatOption) *Builder {
	items := make([]*Fragment, len(conds))
	for i, c := range conds {
		items[i] = c.fragment()
	}
	b.root.AddChildren(group, items...).SetGroupFormat(group, format...)
	return b
}

// Join adds a JOIN clause of the given kind.
// Conditions go to the ON group until a directive routes them to the OR group;
// see JoinCond.
func (b *Builder) Join(kind JoinType, table Table, conds ...JoinCond) *Builder {
	join := types.NewFragment(string(kind)).
		WithInnerPrefix(" ").
		AddChildren(groupTable, table.fragment()).
		SetGroupFormat(groupTable, types.SuppressName(true))

	route := routeOn
	for _, c := range conds {
		route = route.next(c.Directive)
		join.AddChildren(route.group(), c.fragment())
	}

	join.
		SetGroupFormat(groupJoinOn,
			types.Separator(" AND "),
			types.GroupPrefix(" "),
			types.NameSeparator(" "),
		).
		SetGroupFormat(groupJoinOr,
			types.Separator(" OR "),
			types.GroupPrefix(" "),
			types.NameSeparator(" "),
		).
		Reorder(groupTable, groupJoinOn, groupJoinOr)

	b.root.
		AddChildren(groupJoin, join).
		SetGroupFormat(groupJoin,
			types.Separator(" "),
			types.GroupPrefix(" "),
			types.SuppressName(true),
		)
	return b
}

// PlainJoin adds a JOIN.
func (b *Builder) PlainJoin(table Table, conds ...JoinCond) *Builder {
	return b.Join(PlainJoin, table, conds...)
}

// InnerJoin adds an INNER JOIN.
func (b *Builder) InnerJoin(table Table, conds ...JoinCond) *Builder {
	return b.Join(InnerJoin, table, conds...)
}

// LeftJoin adds a LEFT JOIN.
func (b *Builder) LeftJoin(table Table, conds ...JoinCond) *Builder {
	return b.Join(LeftJoin, table, conds...)
}

// RightJoin adds a RIGHT JOIN.
func (b *Builder) RightJoin(table Table, conds ...JoinCond) *Builder {
	return b.Join(RightJoin, table, conds...)
}

// GroupBy adds GROUP BY expressions. Field aliases are ignored.
func (b *Builder) GroupBy(fields ...Field) *Builder {
	items := make([]*Fragment, len(fields))
	for i, f := range fields {
		items[i] = f.Expr.Fragment()
	}
	b.root.
		AddChildren(groupGroupBy, items...).
		SetGroupFormat(groupGroupBy,
			types.Separator(", "),
			types.GroupPrefix(" "),
			types.NameSeparator(" "),
		)
	return b
}

// OrderBy adds ORDER BY items.
func (b *Builder) OrderBy(orders ...Order) *Builder {
	items := make([]*Fragment, len(orders))
	for i, o := range orders {
		items[i] = o.fragment()
	}
	b.root.
		AddChildren(groupOrderBy, items...).
		SetGroupFormat(groupOrderBy,
			types.Separator(", "),
			types.GroupPrefix(" "),
			types.NameSeparator(" "),
		)
	return b
}

// Limit adds a LIMIT clause, and an OFFSET clause when offset is given.
func (b *Builder) Limit(limit int, offset ...int) *Builder {
	b.root.
		AddChildren(groupLimit, types.NewFragment(strconv.Itoa(limit))).
		SetGroupFormat(groupLimit, types.GroupPrefix(" "), types.NameSeparator(" "))
	if len(offset) > 0 {
		b.Offset(offset[0])
	}
	return b
}

// Offset adds an OFFSET clause.
func (b *Builder) Offset(offset int) *Builder {
	b.root.
		AddChildren(groupOffset, types.NewFragment(strconv.Itoa(offset))).
		SetGroupFormat(groupOffset, types.GroupPrefix(" "), types.NameSeparator(" "))
	return b
}

// Expression puts the root's clauses in canonical order and returns the root.
// It may be called any number of times.
func (b *Builder) Expression() *Fragment {
	b.root.Reorder(clauseOrder...)
	b.log.Debug("statement finalized",
		zap.String("operation", string(b.op)),
		zap.Strings("clauses", b.root.Groups()),
	)
	return b.root
}

// Render finalizes the statement and returns its SQL text.
func (b *Builder) Render() string {
	return b.Expression().Render()
}

// String implements fmt.Stringer.
func (b *Builder) String() string {
	return b.Render()
}

// Subquery wraps the finalized statement so it can be used as a value inside
// another statement. borders must hold exactly an opening and a closing text;
// anything else falls back to the builder's default borders.
//
// The returned fragment refers to the builder's root, so later changes to the
// builder show up in it.
func (b *Builder) Subquery(borders ...string) *Fragment {
	open, closing := b.borders[0], b.borders[1]
	switch len(borders) {
	case 2:
		open, closing = borders[0], borders[1]
	case 0:
	default:
		b.log.Warn("subquery borders ignored",
			zap.Strings("borders", borders),
			zap.String("open", open),
			zap.String("close", closing),
		)
	}
	return types.Framed("", open, "", closing).
		AddChildren(groupSubquery, b.Expression()).
		SetGroupFormat(groupSubquery, types.SuppressName(true))
}
