package server

import (
	"chunky/logger"
	"chunky/struct/dict"
	"chunky/struct/list"
	"chunky/struct/lock"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	Fixed    = "fixed"
	Growable = "growable"
	Linked   = "linked"
	Chunked  = "chunked"
)

type Config struct {
	ChunkCapacity int
	FixedCapacity int
	Shards        int
}

type entry struct {
	kind string
	list list.List[any]
}

type server struct {
	lists *dict.ConcurrentDict[*entry]
	locks *lock.Locks
	conf  Config
}

func makeServer(conf Config) *server {
	if conf.ChunkCapacity <= 0 {
		conf.ChunkCapacity = 16
	}
	if conf.FixedCapacity <= 0 {
		conf.FixedCapacity = 16
	}
	return &server{
		lists: dict.MakeConcurrentDict[*entry](conf.Shards),
		locks: lock.Make(conf.Shards),
		conf:  conf,
	}
}

func Start(engine *gin.Engine, conf Config) {
	s := makeServer(conf)
	s.RegistryRouting(engine)
}

func (s *server) RegistryRouting(engine *gin.Engine) {
	api := engine.Group("/api")
	{
		api.GET("/lists", s.Lists)
		api.POST("/list", s.Create)
		api.GET("/list", s.Show)
		api.DELETE("/list", s.Remove)
		api.POST("/add", s.Add)
		api.POST("/remove", s.RemoveElement)
		api.GET("/get", s.Get)
		api.PUT("/set", s.Set)
		api.GET("/chunks", s.Chunks)
	}
}

func (s *server) makeList(kind string, capacity int) (list.List[any], error) {
	switch strings.ToLower(kind) {
	case Fixed:
		if capacity <= 0 {
			capacity = s.conf.FixedCapacity
		}
		return list.MakeFixed[any](capacity), nil
	case Growable:
		return list.MakeGrowable[any](), nil
	case Linked:
		return list.MakeLinked[any](), nil
	case Chunked, "":
		if capacity <= 0 {
			capacity = s.conf.ChunkCapacity
		}
		return list.MakeChunked[any](capacity), nil
	}
	return nil, errors.Errorf("invalid list kind %q", kind)
}

func (s *server) Create(c *gin.Context) {
	capacity := 0
	if capStr := c.Query("capacity"); capStr != "" {
		var err error
		capacity, err = strconv.Atoi(capStr)
		if err != nil || capacity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid capacity"})
			return
		}
	}
	kind := strings.ToLower(c.Query("kind"))
	if kind == "" {
		kind = Chunked
	}
	l, err := s.makeList(kind, capacity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := uuid.NewString()
	s.lists.Put(id, &entry{kind: kind, list: l})
	logger.Info("list created:", id, kind)
	c.JSON(http.StatusOK, gin.H{"data": id})
}

func (s *server) Lists(c *gin.Context) {
	var data []gin.H
	for _, id := range s.lists.Keys() {
		e, ok := s.lists.Get(id)
		if !ok {
			continue
		}
		s.locks.WithRead(id, func() {
			data = append(data, gin.H{"id": id, "kind": e.kind, "size": e.list.Size()})
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (s *server) lookup(c *gin.Context) (string, *entry, bool) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return "", nil, false
	}
	e, ok := s.lists.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "list not found"})
		return "", nil, false
	}
	return id, e, true
}

func (s *server) Show(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	var values []any
	s.locks.WithRead(id, func() {
		values = list.ToSlice(e.list)
	})
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"kind": e.kind, "size": len(values), "values": values}})
}

func (s *server) Remove(c *gin.Context) {
	id, _, ok := s.lookup(c)
	if !ok {
		return
	}
	s.lists.Remove(id)
	logger.Info("list removed:", id)
	c.JSON(http.StatusOK, gin.H{})
}

type position struct {
	front bool
	back  bool
	index int
}

func parsePosition(at string) (position, error) {
	switch strings.ToLower(at) {
	case "front":
		return position{front: true}, nil
	case "back", "":
		return position{back: true}, nil
	}
	i, err := strconv.Atoi(at)
	if err != nil {
		return position{}, errors.Errorf("invalid position %q", at)
	}
	return position{index: i}, nil
}

func bindValue(c *gin.Context) (any, bool) {
	var mp map[string]any
	err := c.BindJSON(&mp)
	if err != nil {
		return nil, false
	}
	val, ok := mp["value"]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return nil, false
	}
	return val, true
}

func (s *server) Add(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	pos, err := parsePosition(c.Query("at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	val, ok := bindValue(c)
	if !ok {
		return
	}
	s.locks.With(id, func() {
		switch {
		case pos.front:
			err = e.list.AddFront(val)
		case pos.back:
			err = e.list.AddBack(val)
		default:
			err = e.list.AddIndex(pos.index, val)
		}
	})
	if err != nil {
		s.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *server) RemoveElement(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	pos, err := parsePosition(c.Query("at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var val any
	s.locks.With(id, func() {
		switch {
		case pos.front:
			val, err = e.list.RemoveFront()
		case pos.back:
			val, err = e.list.RemoveBack()
		default:
			val, err = e.list.RemoveIndex(pos.index)
		}
	})
	if err != nil {
		s.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": val})
}

func (s *server) Get(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	pos, err := parsePosition(c.Query("at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var val any
	s.locks.WithRead(id, func() {
		switch {
		case pos.front:
			val, err = e.list.GetFront()
		case pos.back:
			val, err = e.list.GetBack()
		default:
			val, err = e.list.GetIndex(pos.index)
		}
	})
	if err != nil {
		s.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": val})
}

func (s *server) Set(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Query("at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at must be an index"})
		return
	}
	val, ok := bindValue(c)
	if !ok {
		return
	}
	s.locks.With(id, func() {
		err = e.list.SetIndex(index, val)
	})
	if err != nil {
		s.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *server) Chunks(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	chunked, ok := e.list.(*list.ChunkedList[any])
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a chunked list"})
		return
	}
	var chunks [][]any
	s.locks.WithRead(id, func() {
		chunks = chunked.Chunks()
	})
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"capacity": chunked.ChunkCapacity(), "chunks": chunks}})
}

func (s *server) fail(c *gin.Context, id string, err error) {
	logger.Warn("operation failed on list", id, ":", err)
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, list.ErrEmptyCollection):
		return http.StatusConflict
	case errors.Is(err, list.ErrIndexOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, list.ErrCapacityExceeded):
		return http.StatusInsufficientStorage
	}
	return http.StatusInternalServerError
}
