package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/asciipath/pathfinder"
	"github.com/katalvlaran/asciipath/report"
	"github.com/katalvlaran/asciipath/samples"
)

// WalkRequest is the body of POST /walk.
type WalkRequest struct {
	Name    string `json:"name"`
	Map     string `json:"map" binding:"required"`
	Lenient *bool  `json:"lenient,omitempty"`
}

// walk handles a posted map.
func (s *Server) walk(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, s.cfg.MaxBodyBytes)

	var request WalkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Name == "" {
		request.Name = "request"
	}
	lenient := s.cfg.Lenient
	if request.Lenient != nil {
		lenient = *request.Lenient
	}

	s.respond(ctx, request.Name, request.Map, lenient)
}

// listSamples returns the built-in sample names.
func (s *Server) listSamples(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"samples": samples.Names()})
}

// walkSample walks one built-in sample.
func (s *Server) walkSample(ctx *gin.Context) {
	sample, err := samples.Get(ctx.Param("name"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.respond(ctx, sample.Name, sample.Map, s.cfg.Lenient)
}

// respond walks text and writes the report. The walk ends with the request,
// after WalkTimeout, or after MaxSteps moves, whichever comes first.
func (s *Server) respond(ctx *gin.Context, name, text string, lenient bool) {
	walkCtx, cancel := context.WithTimeout(ctx.Request.Context(), s.cfg.WalkTimeout)
	defer cancel()

	steps := 0
	opts := []pathfinder.Option{
		pathfinder.WithContext(walkCtx),
		pathfinder.WithOnStep(func(st pathfinder.Step) error {
			steps++
			if steps >= s.cfg.MaxSteps && st.Char != pathfinder.End {
				return fmt.Errorf("%w at %v: step limit of %d reached", pathfinder.ErrCanceled, st.To, s.cfg.MaxSteps)
			}
			return nil
		}),
	}
	if lenient {
		opts = append(opts, pathfinder.WithLenientPathChars())
	}

	res, err := pathfinder.WalkText(text, opts...)
	rep := report.New(name, res, err)
	log := s.log.WithField("report", rep.ID).WithField("name", name)

	switch {
	case err == nil:
		log.Debugf("walked %d steps", rep.Steps)
		ctx.JSON(http.StatusOK, rep)
	case errors.Is(err, pathfinder.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, rep)
	case errors.Is(err, pathfinder.ErrCanceled):
		log.WithError(err).Warn("walk cut off")
		ctx.JSON(http.StatusServiceUnavailable, rep)
	default:
		log.WithError(err).Info("map rejected")
		ctx.JSON(http.StatusUnprocessableEntity, rep)
	}
}
