package main

import (
	"chunky/logger"
	"chunky/server"
	"flag"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func main() {
	var ip string
	var port int
	var conf server.Config
	var level string
	flag.StringVar(&ip, "ip", "", "bind ip address.default is empty for all address.")
	flag.IntVar(&port, "p", 8080, "bind port")
	flag.IntVar(&conf.ChunkCapacity, "k", 16, "default chunk capacity of chunked lists.")
	flag.IntVar(&conf.FixedCapacity, "c", 16, "default capacity of fixed lists.")
	flag.IntVar(&conf.Shards, "shards", 16, "shard count of the list registry.")
	flag.StringVar(&level, "l", logger.INFO, "log level: DEBUG, INFO, WARN, ERROR.")
	flag.Parse()
	logger.SetLevel(level)

	r := gin.Default()
	server.Start(r, conf)
	r.NoRoute(func(ctx *gin.Context) { ctx.JSON(http.StatusNotFound, gin.H{}) })

	addr := fmt.Sprintf("%s:%d", ip, port)
	logger.Info("listening on", addr)
	err := r.Run(addr)
	if err != nil {
		logger.Fatal(err)
	}
}
