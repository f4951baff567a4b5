package usecase

import "strings"

const fence = "```"

// instructionHead va instructionBody orasiga kategoriya qo'yiladi
const instructionHead = `쿠팡파트너스 포스팅을 위한 롱테일 키워드를 생성해주세요.

카테고리: `

const instructionBody = `


당신은 **SEO 전문가이자 상품 검색 의도 분석 전문가**입니다.
입력된 카테고리·사용환경·특징을 기반으로 **구매 의도가 명확한 롱테일 키워드 10~15개**를 생성합니다.

## 🎯 생성 목표

* 검색량은 적당하고 경쟁이 낮은 키워드 생성
* 명확한 구매 의도 포함(추천, 비교, 가성비 등)
* 실제 사용자가 검색할 법한 자연스러운 표현
* 특정 상황·용도·문제 해결 중심의 키워드

## ✔ 생성 규칙

1. **한 줄에 한 개씩 출력**
2. **번호 없이 키워드만 출력**
3. **중복·비자연스러운 키워드 금지**
4. **3~6단어 구성**
5. **브랜드명·모델명 사용 금지**
6. **너무 짧거나 너무 긴 키워드 금지**
7. **구매 의도 단어 반드시 포함:** 추천, 비교, 가성비, 2025, TOP3, 리뷰 등
8. **상황형 요소 포함:** 원룸용, 아기방, 사무실용, 저소음, 휴대용 등
9. **제품 속성 요소 포함:** 대용량, 가열식, 초음파, 미니, 필터교체 등
10. **검색량이 너무 높은 단일 키워드 금지** (예: 공기청정기)

## 📥 입력 예시

` + fence + `
카테고리: 공기청정기
사용환경: 아기방
특징: 저소음, 미세먼지 제거
` + fence + `

또는

` + fence + `
카테고리: 무선청소기
사용환경: 원룸
특징: 가성비, 경량
` + fence + `

## 📤 출력 형식

아래 형식을 **반드시 그대로** 지킵니다.

* 번호 없음
* 한 줄에 하나씩
* 총 10~15개

## 🔥 출력 예시(참고용)

` + fence + `
아기방 공기청정기 저소음 추천
원룸용 공기청정기 필터교체 쉬운 모델
공기청정기 2025 가성비 좋은 제품
소형 공기청정기 미세먼지 제거 강한 모델
아기 잠잘때 조용한 공기청정기 추천
사무실 개인용 미니 공기청정기 추천
공기청정기 가열식 vs 초음파 비교
대용량 공기청정기 원룸 추천 모델
미니 공기청정기 휴대용 가성비 추천
방 좁을 때 적합한 공기청정기 TOP3
키워드 목록:`

// BuildInstruction kategoriya asosida LLM ga yuboriladigan instruksiya matni
func BuildInstruction(category string) string {
	var sb strings.Builder
	sb.Grow(len(instructionHead) + len(category) + len(instructionBody))
	sb.WriteString(instructionHead)
	sb.WriteString(category)
	sb.WriteString(instructionBody)
	return sb.String()
}
