package ioweb

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gnpokedex/pkg"
	"github.com/gnames/gnpokedex/pkg/dex"
	"github.com/gnames/gnuuid"
)

// FlavorResponse is the body of the flavor endpoint.
type FlavorResponse struct {
	SpeciesID  int               `json:"speciesId"`
	LanguageID int               `json:"languageId"`
	Entries    []dex.FlavorEntry `json:"entries"`
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": gnpokedex.Version})
}

func (s *Server) languages(c *gin.Context) {
	c.JSON(http.StatusOK, s.dex.Languages())
}

func (s *Server) card(c *gin.Context) {
	lang, ok := s.languageParam(c)
	if !ok {
		return
	}
	withFlavor, ok := boolParam(c, "flavor")
	if !ok {
		return
	}

	card, err := s.dex.Assemble(dex.Query{
		Identifier: c.Param("identifier"),
		Form:       c.Query("form"),
		LanguageID: lang,
		WithFlavor: withFlavor,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	etag := cardETag(card.FormID, lang, withFlavor)
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (s *Server) flavor(c *gin.Context) {
	lang, ok := s.languageParam(c)
	if !ok {
		return
	}

	form, err := s.dex.Resolve(c.Param("identifier"), c.Query("form"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	res := FlavorResponse{SpeciesID: form.SpeciesID, LanguageID: lang}
	if version := c.Query("version"); version != "" {
		entry, err := s.dex.FlavorForVersion(form.SpeciesID, lang, version)
		if err != nil {
			abortWithError(c, err)
			return
		}
		res.Entries = []dex.FlavorEntry{entry}
	} else {
		res.Entries = s.dex.Flavor(form.SpeciesID, lang)
	}
	c.JSON(http.StatusOK, res)
}

// languageParam returns the language of the lang query parameter, or
// the default language.
func (s *Server) languageParam(c *gin.Context) (int, bool) {
	val := c.Query("lang")
	if val == "" {
		return s.cfg.Language.DefaultID, true
	}
	id, err := s.dex.ParseLanguage(val)
	if err != nil {
		abortWithError(c, BadRequestError("lang", val, err))
		return 0, false
	}
	return id, true
}

func boolParam(c *gin.Context, name string) (bool, bool) {
	val := c.Query(name)
	if val == "" {
		return false, true
	}
	res, err := strconv.ParseBool(val)
	if err != nil {
		abortWithError(c, BadRequestError(name, val, err))
		return false, false
	}
	return res, true
}

// cardETag is a UUID v5 of the card cache key, so equal requests get
// equal tags across restarts.
func cardETag(formID, languageID int, withFlavor bool) string {
	key := fmt.Sprintf("%d|%d|%t", formID, languageID, withFlavor)
	return strconv.Quote(gnuuid.New(key).String())
}
