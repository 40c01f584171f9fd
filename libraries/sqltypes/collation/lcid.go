// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collation

import (
	"sort"

	"golang.org/x/text/language"
)

const (
	InvariantLCID uint32 = 127
	EnglishUSLCID uint32 = 1033
)

type lcidInfo struct {
	tag      language.Tag
	codePage int
}

// lcids maps the Windows locale identifiers that have a collation here to a BCP 47 tag and the ANSI
// code page used for non-Unicode text.
var lcids = map[uint32]lcidInfo{
	InvariantLCID: {language.Und, 1252},
	1025:          {language.MustParse("ar-SA"), 1256},
	1028:          {language.MustParse("zh-TW"), 950},
	1029:          {language.MustParse("cs-CZ"), 1250},
	1031:          {language.MustParse("de-DE"), 1252},
	1032:          {language.MustParse("el-GR"), 1253},
	EnglishUSLCID: {language.MustParse("en-US"), 1252},
	1034:          {language.MustParse("es-ES-u-co-trad"), 1252},
	1036:          {language.MustParse("fr-FR"), 1252},
	1037:          {language.MustParse("he-IL"), 1255},
	1040:          {language.MustParse("it-IT"), 1252},
	1041:          {language.MustParse("ja-JP"), 932},
	1042:          {language.MustParse("ko-KR"), 949},
	1043:          {language.MustParse("nl-NL"), 1252},
	1045:          {language.MustParse("pl-PL"), 1250},
	1046:          {language.MustParse("pt-BR"), 1252},
	1049:          {language.MustParse("ru-RU"), 1251},
	1053:          {language.MustParse("sv-SE"), 1252},
	1054:          {language.MustParse("th-TH"), 874},
	1055:          {language.MustParse("tr-TR"), 1254},
	1066:          {language.MustParse("vi-VN"), 1258},
	2052:          {language.MustParse("zh-CN"), 936},
	2057:          {language.MustParse("en-GB"), 1252},
	2070:          {language.MustParse("pt-PT"), 1252},
	3079:          {language.MustParse("de-AT"), 1252},
	3082:          {language.MustParse("es-ES"), 1252},
	3084:          {language.MustParse("fr-CA"), 1252},
}

// LCIDs returns the supported locale identifiers in ascending order.
func LCIDs() []uint32 {
	ids := make([]uint32, 0, len(lcids))
	for id := range lcids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Tag returns the language tag of a locale identifier.
func Tag(lcid uint32) (language.Tag, bool) {
	info, ok := lcids[lcid]
	return info.tag, ok
}

// CodePage returns the ANSI code page of a locale identifier.
func CodePage(lcid uint32) (int, bool) {
	info, ok := lcids[lcid]
	return info.codePage, ok
}

var tagMatcher language.Matcher
var matcherLCIDs []uint32

func init() {
	matcherLCIDs = LCIDs()
	tags := make([]language.Tag, len(matcherLCIDs))
	for i, id := range matcherLCIDs {
		tags[i] = lcids[id].tag
	}
	tagMatcher = language.NewMatcher(tags)
}

// LCIDForTag returns the supported locale identifier closest to t. Tags with no reasonable match
// resolve to the invariant locale.
func LCIDForTag(t language.Tag) uint32 {
	if t == language.Und {
		return InvariantLCID
	}
	for _, id := range matcherLCIDs {
		if lcids[id].tag == t {
			return id
		}
	}
	_, idx, conf := tagMatcher.Match(t)
	if conf == language.No {
		return InvariantLCID
	}
	return matcherLCIDs[idx]
}
