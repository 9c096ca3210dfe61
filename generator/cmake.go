package generator

import (
	"fmt"
	"strings"
)

const (
	cmakeVersionMajor = 1
	cmakeVersionMinor = 0
	cmakeVersionPatch = 0
	cmakeVersionTweak = 3

	cmakeProjectURL = "https://github.com/randaleike/argparse"
)

// CmakeGenerator builds the CMakeLists.txt build file and the
// language_files.cmake include file for the generated sources.
type CmakeGenerator struct {
	baseGen     *BaseFileGenerator
	langGen     *LangFileGenerator
	incDirs     []string
	mockIncDirs []string
	baseDirName string
}

// NewCmakeGenerator builds a cmake file generator. The include
// directories are relative to the output base directory.
func NewCmakeGenerator(baseGen *BaseFileGenerator, langGen *LangFileGenerator,
	incDirs []string, mockIncDir, baseDirName string) *CmakeGenerator {
	return &CmakeGenerator{
		baseGen:     baseGen,
		langGen:     langGen,
		incDirs:     incDirs,
		mockIncDirs: []string{mockIncDir},
		baseDirName: baseDirName,
	}
}

func cmakeComment(text string) []string {
	return []string{"####", "# " + text, "####"}
}

// cmakeSetBlock emits a cmake set() list with one value per line.
func cmakeSetBlock(name string, values []string) []string {
	lines := []string{"set (" + name}
	for _, value := range values {
		lines = append(lines, "     "+value)
	}
	return append(lines, "     )")
}

// unittestBuild emits the add_executable and gtest registration code
// for one unit test target.
func (g *CmakeGenerator) unittestBuild(description string, sourceFiles []string,
	targetName, includeDir string) []string {
	lines := cmakeComment(description + " unit test build")
	lines = append(lines,
		"add_executable("+targetName+" "+strings.Join(sourceFiles, " ")+")",
		"target_include_directories("+targetName+" PUBLIC ${"+includeDir+"} ${GTEST_INCLUDE_DIR})",
		"target_link_libraries("+targetName+" PRIVATE ${GTEST_LIBRARIES})",
		"target_compile_options("+targetName+" PUBLIC -DGTEST_LINKED_AS_SHARED_LIBRARY=1)",
		"if((${CMAKE_SYSTEM_NAME} MATCHES \"Linux\") AND (CMAKE_BUILD_TYPE MATCHES \"^[Dd]ebug\"))",
		"    target_compile_options("+targetName+" PRIVATE --coverage)",
		"    target_link_options("+targetName+" PRIVATE --coverage)",
		"endif()",
		"",
	)

	testListName := targetName + "AllTests"
	lines = append(lines,
		"gtest_add_tests (TARGET "+targetName+" TEST_LIST "+testListName+")",
		"",
		"if(${CMAKE_SYSTEM_NAME} MATCHES \"Windows\")",
		"    set_tests_properties(${"+testListName+"} PROPERTIES ENVIRONMENT "+
			"\"PATH=$<SHELL_PATH:$<TARGET_FILE_DIR:gtest>>$<SEMICOLON>$ENV{PATH}\")",
		"endif()",
	)
	return lines
}

// IncFileLines emits the language_files.cmake include file used when
// the sources are linked into a parent project directly.
func (g *CmakeGenerator) IncFileLines() []string {
	prefix := "${MASTER_PROJECT_BASE_DIR}/" + g.baseDirName + "/"

	lines := cmakeComment("Language files include path")
	var incDirs []string
	for _, dir := range g.incDirs {
		incDirs = append(incDirs, prefix+dir)
	}
	lines = append(lines, cmakeSetBlock("languageStringsIncDir", incDirs)...)
	lines = append(lines, "")

	lines = append(lines, cmakeComment("Language files mock include path")...)
	mockDirs := []string{"${languageStringsIncDir}"}
	for _, dir := range g.mockIncDirs {
		mockDirs = append(mockDirs, prefix+dir)
	}
	lines = append(lines, cmakeSetBlock("languageStringsMockIncDir", mockDirs)...)
	lines = append(lines, "")

	srcFiles := append([]string{g.baseGen.CmakeLibFileName()}, g.langGen.CmakeLangLibFileNames()...)
	var srcPaths []string
	for _, file := range srcFiles {
		srcPaths = append(srcPaths, prefix+file)
	}
	lines = append(lines, cmakeComment("Language source file list")...)
	lines = append(lines, cmakeSetBlock("languageStringsSrc", srcPaths)...)
	lines = append(lines, "")

	lines = append(lines, cmakeComment("Language mock file list")...)
	lines = append(lines, cmakeSetBlock("languageStringsMockSrc",
		[]string{prefix + g.baseGen.CmakeMockSrcFileName()})...)
	lines = append(lines, "")
	return lines
}

// CmakeListLines emits the standalone CMakeLists.txt build file.
func (g *CmakeGenerator) CmakeListLines() []string {
	projectName := BaseClassName
	version := fmt.Sprintf("%d.%d.%d.%d",
		cmakeVersionMajor, cmakeVersionMinor, cmakeVersionPatch, cmakeVersionTweak)

	lines := []string{
		"# " + projectName + " Library CMake file",
		"cmake_minimum_required(VERSION 3.14)",
		"project(" + projectName + " VERSION " + version +
			" LANGUAGES C CXX DESCRIPTION \"" + projectName +
			" Library\" HOMEPAGE_URL \"" + cmakeProjectURL + "\")",
		"",
		"set(CMAKE_CXX_STANDARD 17)",
		"set(CMAKE_CXX_STANDARD_REQUIRED True)",
		"",
	}

	srcFiles := append([]string{g.baseGen.CmakeLibFileName()}, g.langGen.CmakeLangLibFileNames()...)
	baseInclude := projectName + "_baseInclude"
	baseSrc := projectName + "_baseSrc"

	lines = append(lines, cmakeComment(projectName+" Files")...)
	var incPaths []string
	for _, dir := range g.incDirs {
		incPaths = append(incPaths, "${CMAKE_CURRENT_LIST_DIR}/"+dir)
	}
	lines = append(lines, cmakeSetBlock(baseInclude, incPaths)...)
	lines = append(lines, "")

	var srcPaths []string
	for _, file := range srcFiles {
		srcPaths = append(srcPaths, "${CMAKE_CURRENT_LIST_DIR}/"+file)
	}
	lines = append(lines, cmakeSetBlock(baseSrc, srcPaths)...)
	lines = append(lines, "")

	lines = append(lines, cmakeComment(projectName+" library")...)
	lines = append(lines,
		"add_library(${PROJECT_NAME} OBJECT ${"+baseSrc+"})",
		"target_include_directories(${PROJECT_NAME} PRIVATE ${"+baseInclude+"})",
		"set_target_properties(${PROJECT_NAME} PROPERTIES VERSION ${PROJECT_VERSION})",
		"",
	)

	lines = append(lines, cmakeComment(projectName+" Unit tests")...)
	lines = append(lines, "enable_testing()", "include(GoogleTest)", "")

	for _, set := range g.langGen.CmakeUnittestSets() {
		lines = append(lines, g.unittestBuild(set.Language+" string",
			[]string{set.SourceFile, set.UnittestFile}, set.TargetName, baseInclude)...)
		lines = append(lines, "")
	}

	for _, set := range g.baseGen.CmakeSelectUnittestFiles() {
		lines = append(lines, g.unittestBuild("OS selection",
			[]string{"${" + baseSrc + "}", set.UnittestFile}, set.TargetName, baseInclude)...)
		lines = append(lines, "")
	}

	lines = append(lines, g.unittestBuild(projectName+" base",
		[]string{"${" + baseSrc + "}", g.baseGen.CmakeBaseUnittestFileName()},
		projectName+"_test", baseInclude)...)
	return append(lines, "")
}

// Generate adds CMakeLists.txt and language_files.cmake to fs.
func (g *CmakeGenerator) Generate(fs *FileSet) {
	fs.Add("CMakeLists.txt", g.CmakeListLines())
	fs.Add("language_files.cmake", g.IncFileLines())
}
