// Package storetest provides an in-memory store.Collection for tests.
// It interprets the filter and pipeline shapes the repos actually issue
// (equality, $or, $regex, $expr $lt, $group/$project/$unwind/$sort/$limit)
// and is not a general MongoDB emulation.
package storetest

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"equisport/internal/store"
)

// Gateway is an in-memory store.Gateway.
type Gateway struct {
	equipments *Collection
	users      *Collection
	reviews    *Collection
	blogPosts  *Collection
}

func NewGateway() *Gateway {
	return &Gateway{
		equipments: NewCollection(),
		users:      NewCollection(),
		reviews:    NewCollection(),
		blogPosts:  NewCollection(),
	}
}

func (g *Gateway) Equipments() store.Collection { return g.equipments }
func (g *Gateway) Users() store.Collection      { return g.users }
func (g *Gateway) Reviews() store.Collection    { return g.reviews }
func (g *Gateway) BlogPosts() store.Collection  { return g.blogPosts }

// Collection keeps documents in insertion order, like an unindexed
// collection returns them.
type Collection struct {
	mu   sync.Mutex
	docs []bson.M
}

func NewCollection(docs ...bson.M) *Collection {
	c := &Collection{}
	for _, d := range docs {
		if _, err := c.InsertOne(context.Background(), d); err != nil {
			panic(err)
		}
	}
	return c
}

func (c *Collection) InsertOne(_ context.Context, doc any) (*mongo.InsertOneResult, error) {
	m, err := toDoc(doc)
	if err != nil {
		return nil, err
	}
	id, ok := m["_id"]
	if !ok {
		id = primitive.NewObjectID()
		m["_id"] = id
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, m)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (c *Collection) Find(_ context.Context, filter any, opts *options.FindOptions, out any) error {
	c.mu.Lock()
	matched := c.match(filter)
	c.mu.Unlock()
	if opts != nil && opts.Sort != nil {
		sortDocs(matched, opts.Sort.(bson.D))
	}
	if opts != nil && opts.Limit != nil && int64(len(matched)) > *opts.Limit {
		matched = matched[:*opts.Limit]
	}
	return decodeAll(matched, out)
}

func (c *Collection) FindOne(_ context.Context, filter any, out any) error {
	c.mu.Lock()
	matched := c.match(filter)
	c.mu.Unlock()
	if len(matched) == 0 {
		return mongo.ErrNoDocuments
	}
	return decodeOne(matched[0], out)
}

func (c *Collection) UpdateOne(_ context.Context, filter, update any, opts *options.UpdateOptions) (*mongo.UpdateResult, error) {
	set, err := setFields(update)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.docs {
		if matches(d, asFilter(filter)) {
			for k, v := range set {
				d[k] = v
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	if opts == nil || opts.Upsert == nil || !*opts.Upsert {
		return &mongo.UpdateResult{}, nil
	}
	doc := bson.M{}
	for k, v := range asFilter(filter) {
		doc[k] = v
	}
	for k, v := range set {
		doc[k] = v
	}
	id, ok := doc["_id"]
	if !ok {
		id = primitive.NewObjectID()
		doc["_id"] = id
	}
	c.docs = append(c.docs, doc)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter any) (*mongo.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, d := range c.docs {
		if matches(d, asFilter(filter)) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{DeletedCount: 0}, nil
}

func (c *Collection) CountDocuments(_ context.Context, filter any) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.match(filter))), nil
}

func (c *Collection) Aggregate(_ context.Context, pipeline mongo.Pipeline, out any) error {
	c.mu.Lock()
	docs := make([]bson.M, len(c.docs))
	for i, d := range c.docs {
		docs[i] = copyDoc(d)
	}
	c.mu.Unlock()

	for _, stage := range pipeline {
		if len(stage) != 1 {
			return fmt.Errorf("storetest: stage must have exactly one operator, got %d", len(stage))
		}
		name, spec := stage[0].Key, stage[0].Value
		var err error
		switch name {
		case "$group":
			docs, err = groupStage(docs, spec.(bson.M))
		case "$project":
			docs, err = projectStage(docs, spec.(bson.M))
		case "$unwind":
			docs, err = unwindStage(docs, spec.(string))
		case "$sort":
			spec := spec.(bson.D)
			sortDocs(docs, spec)
		case "$limit":
			n := toInt(spec)
			if len(docs) > n {
				docs = docs[:n]
			}
		default:
			err = fmt.Errorf("storetest: unsupported stage %s", name)
		}
		if err != nil {
			return err
		}
	}
	return decodeAll(docs, out)
}

// match returns copies of all documents matching filter, in insertion
// order. Caller holds the lock.
func (c *Collection) match(filter any) []bson.M {
	f := asFilter(filter)
	var out []bson.M
	for _, d := range c.docs {
		if matches(d, f) {
			out = append(out, copyDoc(d))
		}
	}
	return out
}

func asFilter(filter any) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return filter.(bson.M)
}

func matches(doc bson.M, filter bson.M) bool {
	for k, v := range filter {
		switch k {
		case "$or":
			branches := v.([]bson.M)
			matched := false
			for _, b := range branches {
				if matches(doc, b) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		case "$expr":
			if !evalExpr(doc, v.(bson.M)) {
				return false
			}
		default:
			if !fieldMatches(doc[k], v) {
				return false
			}
		}
	}
	return true
}

func fieldMatches(val, cond any) bool {
	switch c := cond.(type) {
	case primitive.Regex:
		s, ok := val.(string)
		if !ok {
			return false
		}
		pat := c.Pattern
		if strings.Contains(c.Options, "i") {
			pat = "(?i)" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return false
		}
		return re.MatchString(s)
	default:
		if fa, ok := toFloat(val); ok {
			if fb, ok := toFloat(cond); ok {
				return fa == fb
			}
			return false
		}
		return reflect.DeepEqual(val, cond)
	}
}

// evalExpr handles the one $expr shape the repos use: {$lt: ["$a", "$b"]}.
func evalExpr(doc bson.M, expr bson.M) bool {
	args, ok := expr["$lt"].(bson.A)
	if !ok || len(args) != 2 {
		return false
	}
	a, aok := toFloat(resolve(doc, args[0]))
	b, bok := toFloat(resolve(doc, args[1]))
	return aok && bok && a < b
}

// resolve evaluates a pipeline expression: "$field" paths read from the
// document, anything else is a literal.
func resolve(doc bson.M, expr any) any {
	if s, ok := expr.(string); ok && strings.HasPrefix(s, "$") {
		v, _ := lookup(doc, strings.TrimPrefix(s, "$"))
		return v
	}
	return expr
}

func lookup(doc bson.M, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = doc
	for _, p := range parts {
		m, ok := cur.(bson.M)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func groupStage(docs []bson.M, spec bson.M) ([]bson.M, error) {
	idExpr := spec["_id"]
	var order []any
	groups := map[any][]bson.M{}
	for _, d := range docs {
		key := resolve(d, idExpr)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], d)
	}
	var out []bson.M
	for _, key := range order {
		members := groups[key]
		row := bson.M{"_id": key}
		for field, accRaw := range spec {
			if field == "_id" {
				continue
			}
			acc, ok := accRaw.(bson.M)
			if !ok || len(acc) != 1 {
				return nil, fmt.Errorf("storetest: bad accumulator for %s", field)
			}
			for op, arg := range acc {
				switch op {
				case "$first":
					row[field] = resolve(members[0], arg)
				case "$sum":
					total := 0.0
					for range members {
						n, _ := toFloat(arg)
						total += n
					}
					row[field] = int64(total)
				default:
					return nil, fmt.Errorf("storetest: unsupported accumulator %s", op)
				}
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func projectStage(docs []bson.M, spec bson.M) ([]bson.M, error) {
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		row := bson.M{}
		if id, ok := d["_id"]; ok && !excluded(spec, "_id") {
			row["_id"] = id
		}
		for field, expr := range spec {
			if field == "_id" {
				continue
			}
			switch e := expr.(type) {
			case string:
				if v := resolve(d, e); v != nil {
					row[field] = v
				}
			default:
				if included(expr) {
					if v, ok := d[field]; ok {
						row[field] = v
					}
				}
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func excluded(spec bson.M, field string) bool {
	v, ok := spec[field]
	if !ok {
		return false
	}
	return !included(v)
}

func included(v any) bool {
	n, ok := toFloat(v)
	if ok {
		return n != 0
	}
	b, ok := v.(bool)
	return ok && b
}

func unwindStage(docs []bson.M, path string) ([]bson.M, error) {
	field := strings.TrimPrefix(path, "$")
	var out []bson.M
	for _, d := range docs {
		arr, ok := d[field].(bson.A)
		if !ok {
			continue
		}
		for _, elem := range arr {
			row := copyDoc(d)
			row[field] = elem
			out = append(out, row)
		}
	}
	return out, nil
}

func sortDocs(docs []bson.M, keys bson.D) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, k := range keys {
			a, _ := lookup(docs[i], k.Key)
			b, _ := lookup(docs[j], k.Key)
			cmp := compare(a, b)
			if cmp == 0 {
				continue
			}
			if toInt(k.Value) < 0 {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compare follows BSON ordering closely enough for catalog data: missing
// sorts below numbers, numbers below strings.
func compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case 1:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case 2:
		return strings.Compare(a.(string), b.(string))
	}
	return 0
}

func rank(v any) int {
	if v == nil {
		return 0
	}
	if _, ok := toFloat(v); ok {
		return 1
	}
	if _, ok := v.(string); ok {
		return 2
	}
	return 3
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) int {
	n, _ := toFloat(v)
	return int(n)
}

func setFields(update any) (bson.M, error) {
	u, ok := update.(bson.M)
	if !ok {
		return nil, fmt.Errorf("storetest: update must be bson.M")
	}
	set, ok := u["$set"].(bson.M)
	if !ok {
		return nil, fmt.Errorf("storetest: only $set updates are supported")
	}
	return set, nil
}

// toDoc normalizes any insertable value into a bson.M via a marshal round
// trip so nested values take their canonical decoded form (bson.M/bson.A).
func toDoc(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func copyDoc(d bson.M) bson.M {
	c, err := toDoc(d)
	if err != nil {
		panic(err)
	}
	return c
}

func decodeOne(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func decodeAll(docs []bson.M, out any) error {
	slice := reflect.ValueOf(out).Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(docs))
	for _, d := range docs {
		elem := reflect.New(slice.Type().Elem())
		if err := decodeOne(d, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Set(result)
	return nil
}
